// Package stream implements the SDP streaming codec: the same primitives
// as pkg/wire, over a pull/push byte-stream abstraction rather than a
// caller-owned slice. It shares pkg/wire's wire format and error kinds,
// but has no zero-copy opportunity — every string and array decode
// allocates its own buffer, since the source is not necessarily contiguous.
package stream

import (
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/marmos91/sdp/pkg/wire"
)

// Io wraps an underlying reader/writer failure. It is the streaming-only
// error kind; pkg/wire has no equivalent since slices can't fail to be
// read.
type Io struct {
	Cause error
}

func (e *Io) Error() string { return fmt.Sprintf("stream: io error: %v", e.Cause) }
func (e *Io) Unwrap() error { return e.Cause }

func wrapIo(err error) error {
	if err == nil {
		return nil
	}
	return &Io{Cause: err}
}

// Writer encodes SDP primitives onto an io.Writer.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w for SDP streaming encode calls.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

func (e *Writer) writeAll(b []byte) error {
	if _, err := e.w.Write(b); err != nil {
		return wrapIo(err)
	}
	return nil
}

// WriteBool writes a single presence-style byte.
func (e *Writer) WriteBool(v bool) error {
	var b [1]byte
	if v {
		b[0] = 1
	}
	return e.writeAll(b[:])
}

// WriteU8 writes a single raw byte.
func (e *Writer) WriteU8(v uint8) error { return e.writeAll([]byte{v}) }

// WriteI8 writes a single raw byte.
func (e *Writer) WriteI8(v int8) error { return e.WriteU8(uint8(v)) }

// WriteU16 writes a little-endian uint16.
func (e *Writer) WriteU16(v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return e.writeAll(b[:])
}

// WriteI16 writes a little-endian two's-complement int16.
func (e *Writer) WriteI16(v int16) error { return e.WriteU16(uint16(v)) }

// WriteU32 writes a little-endian uint32.
func (e *Writer) WriteU32(v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return e.writeAll(b[:])
}

// WriteI32 writes a little-endian two's-complement int32.
func (e *Writer) WriteI32(v int32) error { return e.WriteU32(uint32(v)) }

// WriteU64 writes a little-endian uint64.
func (e *Writer) WriteU64(v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return e.writeAll(b[:])
}

// WriteI64 writes a little-endian two's-complement int64.
func (e *Writer) WriteI64(v int64) error { return e.WriteU64(uint64(v)) }

// WriteF32 writes an IEEE-754 binary32, little-endian.
func (e *Writer) WriteF32(v float32) error { return e.WriteU32(wire.EncodeF32Bits(v)) }

// WriteF64 writes an IEEE-754 binary64, little-endian.
func (e *Writer) WriteF64(v float64) error { return e.WriteU64(wire.EncodeF64Bits(v)) }

// WriteString writes a u32 byte-length prefix followed by the string's
// UTF-8 bytes.
func (e *Writer) WriteString(s string) error { return e.WriteBytes([]byte(s)) }

// WriteBytes writes a u32 byte-length prefix followed by the raw payload.
func (e *Writer) WriteBytes(data []byte) error {
	if err := e.WriteU32(uint32(len(data))); err != nil {
		return err
	}
	return e.writeAll(data)
}

// WriteRaw writes data with no length prefix. It exists for callers (such
// as message-mode framing) that have already written their own length
// field and just need the payload bytes that follow it.
func (e *Writer) WriteRaw(data []byte) error { return e.writeAll(data) }

// Reader decodes SDP primitives from an io.Reader.
type Reader struct {
	r io.Reader
}

// NewReader wraps r for SDP streaming decode calls.
func NewReader(r io.Reader) *Reader { return &Reader{r: r} }

func (d *Reader) readExact(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return nil, wrapIo(err)
	}
	return buf, nil
}

// ReadBool reads a single bool byte. Any value other than 0 or 1 is
// rejected with wire.InvalidBool.
func (d *Reader) ReadBool() (bool, error) {
	b, err := d.readExact(1)
	if err != nil {
		return false, err
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &wire.InvalidBool{Value: b[0]}
	}
}

// ReadU8 reads a single raw byte.
func (d *Reader) ReadU8() (uint8, error) {
	b, err := d.readExact(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadI8 reads a single raw byte as a two's-complement int8.
func (d *Reader) ReadI8() (int8, error) {
	v, err := d.ReadU8()
	return int8(v), err
}

// ReadU16 reads a little-endian uint16.
func (d *Reader) ReadU16() (uint16, error) {
	b, err := d.readExact(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadI16 reads a little-endian two's-complement int16.
func (d *Reader) ReadI16() (int16, error) {
	v, err := d.ReadU16()
	return int16(v), err
}

// ReadU32 reads a little-endian uint32.
func (d *Reader) ReadU32() (uint32, error) {
	b, err := d.readExact(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadI32 reads a little-endian two's-complement int32.
func (d *Reader) ReadI32() (int32, error) {
	v, err := d.ReadU32()
	return int32(v), err
}

// ReadU64 reads a little-endian uint64.
func (d *Reader) ReadU64() (uint64, error) {
	b, err := d.readExact(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadI64 reads a little-endian two's-complement int64.
func (d *Reader) ReadI64() (int64, error) {
	v, err := d.ReadU64()
	return int64(v), err
}

// ReadF32 reads an IEEE-754 binary32, little-endian.
func (d *Reader) ReadF32() (float32, error) {
	v, err := d.ReadU32()
	if err != nil {
		return 0, err
	}
	return wire.DecodeF32Bits(v), nil
}

// ReadF64 reads an IEEE-754 binary64, little-endian.
func (d *Reader) ReadF64() (float64, error) {
	v, err := d.ReadU64()
	if err != nil {
		return 0, err
	}
	return wire.DecodeF64Bits(v), nil
}

// ReadString reads a u32 length prefix followed by that many bytes,
// validated as UTF-8.
func (d *Reader) ReadString() (string, error) {
	data, err := d.ReadBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", &wire.InvalidUTF8{}
	}
	return string(data), nil
}

// ReadBytes reads a u32 length prefix, rejects it against
// wire.MaxArraySize before allocating, then reads that many raw bytes.
func (d *Reader) ReadBytes() ([]byte, error) {
	n, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	if n > wire.MaxArraySize {
		return nil, &wire.ArrayTooLarge{Size: n, Max: wire.MaxArraySize}
	}
	return d.readExact(int(n))
}
