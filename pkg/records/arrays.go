package records

import (
	"io"

	"github.com/marmos91/sdp/pkg/stream"
	"github.com/marmos91/sdp/pkg/wire"
)

// Arrays exercises fixed-width arrays, a variable-length byte array, and
// an array of strings, in declaration order. Five fields so an all-empty
// instance encodes to exactly five 4-byte zero counts (20 bytes).
type Arrays struct {
	U32s  []uint32
	U64s  []uint64
	F64s  []float64
	Bytes []byte
	Strs  []string
}

// DefaultArrays returns the field-wise zero value (nil slices encode
// identically to empty ones: a zero count, no payload).
func DefaultArrays() Arrays { return Arrays{} }

// EncodedSize returns the exact byte count EncodeToSlice will write.
func (a Arrays) EncodedSize() int {
	n := 4 + 4*len(a.U32s)
	n += 4 + 8*len(a.U64s)
	n += 4 + 8*len(a.F64s)
	n += 4 + len(a.Bytes)
	n += 4
	for _, s := range a.Strs {
		n += 4 + len(s)
	}
	return n
}

// EncodeToSlice writes the record starting at offset 0 of buf.
func (a Arrays) EncodeToSlice(buf []byte) (int, error) {
	off := 0
	n, err := wire.EncodeU32Array(buf, off, a.U32s)
	if err != nil {
		return 0, err
	}
	off += n
	if n, err = wire.EncodeU64Array(buf, off, a.U64s); err != nil {
		return 0, err
	}
	off += n
	if n, err = wire.EncodeF64Array(buf, off, a.F64s); err != nil {
		return 0, err
	}
	off += n
	if n, err = wire.EncodeBytes(buf, off, a.Bytes); err != nil {
		return 0, err
	}
	off += n
	if n, err = wire.EncodeStringArray(buf, off, a.Strs); err != nil {
		return 0, err
	}
	off += n
	return off, nil
}

// DecodeFromSlice reads the record starting at offset 0 of buf.
func (a *Arrays) DecodeFromSlice(buf []byte) (int, error) {
	off := 0
	var err error
	var n int

	if a.U32s, n, err = wire.DecodeU32Array(buf, off); err != nil {
		return 0, err
	}
	off += n
	if a.U64s, n, err = wire.DecodeU64Array(buf, off); err != nil {
		return 0, err
	}
	off += n
	if a.F64s, n, err = wire.DecodeF64Array(buf, off); err != nil {
		return 0, err
	}
	off += n
	if a.Bytes, n, err = wire.DecodeBytes(buf, off); err != nil {
		return 0, err
	}
	off += n
	if a.Strs, n, err = wire.DecodeStringArray(buf, off); err != nil {
		return 0, err
	}
	off += n

	return off, nil
}

// Encode writes the record to w using the streaming codec.
func (a Arrays) Encode(w io.Writer) error {
	sw := stream.NewWriter(w)
	if err := sw.WriteU32Array(a.U32s); err != nil {
		return err
	}
	if err := sw.WriteU64Array(a.U64s); err != nil {
		return err
	}
	if err := sw.WriteF64Array(a.F64s); err != nil {
		return err
	}
	if err := sw.WriteBytes(a.Bytes); err != nil {
		return err
	}
	return sw.WriteStringArray(a.Strs)
}

// Decode reads the record from r using the streaming codec.
func (a *Arrays) Decode(r io.Reader) error {
	sr := stream.NewReader(r)
	var err error
	if a.U32s, err = sr.ReadU32Array(); err != nil {
		return err
	}
	if a.U64s, err = sr.ReadU64Array(); err != nil {
		return err
	}
	if a.F64s, err = sr.ReadF64Array(); err != nil {
		return err
	}
	if a.Bytes, err = sr.ReadBytes(); err != nil {
		return err
	}
	if a.Strs, err = sr.ReadStringArray(); err != nil {
		return err
	}
	return nil
}
