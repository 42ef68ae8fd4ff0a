// Package records contains hand-written stand-ins for schema-compiler
// output. Each type here satisfies the record.Record contract and exists
// to exercise pkg/wire, pkg/stream, and pkg/message against realistic,
// fully-specified field layouts.
package records

import (
	"io"

	"github.com/marmos91/sdp/pkg/stream"
	"github.com/marmos91/sdp/pkg/wire"
)

// Primitives exercises every scalar wire primitive plus a string, in
// declaration order.
type Primitives struct {
	U8  uint8
	U16 uint16
	U32 uint32
	U64 uint64
	I8  int8
	I16 int16
	I32 int32
	I64 int64
	F32 float32
	F64 float64
	B   bool
	Str string
}

// DefaultPrimitives returns the field-wise zero value.
func DefaultPrimitives() Primitives { return Primitives{} }

// EncodedSize returns the exact byte count EncodeToSlice will write.
func (p Primitives) EncodedSize() int {
	return 1 + 2 + 4 + 8 + 1 + 2 + 4 + 8 + 4 + 8 + 1 + 4 + len(p.Str)
}

// EncodeToSlice writes the record starting at offset 0 of buf.
func (p Primitives) EncodeToSlice(buf []byte) (int, error) {
	off := 0
	writers := []func() (int, error){
		func() (int, error) { return wire.EncodeU8(buf, off, p.U8) },
		func() (int, error) { return wire.EncodeU16(buf, off, p.U16) },
		func() (int, error) { return wire.EncodeU32(buf, off, p.U32) },
		func() (int, error) { return wire.EncodeU64(buf, off, p.U64) },
		func() (int, error) { return wire.EncodeI8(buf, off, p.I8) },
		func() (int, error) { return wire.EncodeI16(buf, off, p.I16) },
		func() (int, error) { return wire.EncodeI32(buf, off, p.I32) },
		func() (int, error) { return wire.EncodeI64(buf, off, p.I64) },
		func() (int, error) { return wire.EncodeF32(buf, off, p.F32) },
		func() (int, error) { return wire.EncodeF64(buf, off, p.F64) },
		func() (int, error) { return wire.EncodeBool(buf, off, p.B) },
		func() (int, error) { return wire.EncodeString(buf, off, p.Str) },
	}
	for _, write := range writers {
		n, err := write()
		if err != nil {
			return 0, err
		}
		off += n
	}
	return off, nil
}

// DecodeFromSlice reads the record starting at offset 0 of buf.
func (p *Primitives) DecodeFromSlice(buf []byte) (int, error) {
	off := 0
	var err error
	var n int

	if p.U8, n, err = wire.DecodeU8(buf, off); err != nil {
		return 0, err
	}
	off += n
	if p.U16, n, err = wire.DecodeU16(buf, off); err != nil {
		return 0, err
	}
	off += n
	if p.U32, n, err = wire.DecodeU32(buf, off); err != nil {
		return 0, err
	}
	off += n
	if p.U64, n, err = wire.DecodeU64(buf, off); err != nil {
		return 0, err
	}
	off += n
	if p.I8, n, err = wire.DecodeI8(buf, off); err != nil {
		return 0, err
	}
	off += n
	if p.I16, n, err = wire.DecodeI16(buf, off); err != nil {
		return 0, err
	}
	off += n
	if p.I32, n, err = wire.DecodeI32(buf, off); err != nil {
		return 0, err
	}
	off += n
	if p.I64, n, err = wire.DecodeI64(buf, off); err != nil {
		return 0, err
	}
	off += n
	if p.F32, n, err = wire.DecodeF32(buf, off); err != nil {
		return 0, err
	}
	off += n
	if p.F64, n, err = wire.DecodeF64(buf, off); err != nil {
		return 0, err
	}
	off += n
	if p.B, n, err = wire.DecodeBool(buf, off); err != nil {
		return 0, err
	}
	off += n
	if p.Str, n, err = wire.DecodeString(buf, off); err != nil {
		return 0, err
	}
	off += n

	return off, nil
}

// Encode writes the record to w using the streaming codec, producing the
// same bytes as EncodeToSlice.
func (p Primitives) Encode(w io.Writer) error {
	sw := stream.NewWriter(w)
	for _, write := range []func() error{
		func() error { return sw.WriteU8(p.U8) },
		func() error { return sw.WriteU16(p.U16) },
		func() error { return sw.WriteU32(p.U32) },
		func() error { return sw.WriteU64(p.U64) },
		func() error { return sw.WriteI8(p.I8) },
		func() error { return sw.WriteI16(p.I16) },
		func() error { return sw.WriteI32(p.I32) },
		func() error { return sw.WriteI64(p.I64) },
		func() error { return sw.WriteF32(p.F32) },
		func() error { return sw.WriteF64(p.F64) },
		func() error { return sw.WriteBool(p.B) },
		func() error { return sw.WriteString(p.Str) },
	} {
		if err := write(); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads the record from r using the streaming codec.
func (p *Primitives) Decode(r io.Reader) error {
	sr := stream.NewReader(r)
	var err error
	if p.U8, err = sr.ReadU8(); err != nil {
		return err
	}
	if p.U16, err = sr.ReadU16(); err != nil {
		return err
	}
	if p.U32, err = sr.ReadU32(); err != nil {
		return err
	}
	if p.U64, err = sr.ReadU64(); err != nil {
		return err
	}
	if p.I8, err = sr.ReadI8(); err != nil {
		return err
	}
	if p.I16, err = sr.ReadI16(); err != nil {
		return err
	}
	if p.I32, err = sr.ReadI32(); err != nil {
		return err
	}
	if p.I64, err = sr.ReadI64(); err != nil {
		return err
	}
	if p.F32, err = sr.ReadF32(); err != nil {
		return err
	}
	if p.F64, err = sr.ReadF64(); err != nil {
		return err
	}
	if p.B, err = sr.ReadBool(); err != nil {
		return err
	}
	if p.Str, err = sr.ReadString(); err != nil {
		return err
	}
	return nil
}
