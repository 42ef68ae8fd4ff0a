package records

import (
	"io"

	"github.com/marmos91/sdp/pkg/record"
	"github.com/marmos91/sdp/pkg/stream"
	"github.com/marmos91/sdp/pkg/wire"
)

// Optionals exercises optional fields: each contributes exactly one
// presence byte unconditionally, with the payload following iff present.
// Adjacent optionals never share a bitmap — every field gets its own byte.
type Optionals struct {
	HasName bool
	Name    string

	HasCount bool
	Count    uint32

	HasScore bool
	Score    float64
}

// DefaultOptionals returns all-absent optionals.
func DefaultOptionals() Optionals { return Optionals{} }

// EncodedSize returns the exact byte count EncodeToSlice will write.
func (o Optionals) EncodedSize() int {
	n := 1
	if o.HasName {
		n += 4 + len(o.Name)
	}
	n += 1
	if o.HasCount {
		n += 4
	}
	n += 1
	if o.HasScore {
		n += 8
	}
	return n
}

// EncodeToSlice writes the record starting at offset 0 of buf.
func (o Optionals) EncodeToSlice(buf []byte) (int, error) {
	off := 0
	n, err := record.EncodeOptional(buf, off, o.HasName, func(buf []byte, offset int) (int, error) {
		return wire.EncodeString(buf, offset, o.Name)
	})
	if err != nil {
		return 0, err
	}
	off += n

	if n, err = record.EncodeOptional(buf, off, o.HasCount, func(buf []byte, offset int) (int, error) {
		return wire.EncodeU32(buf, offset, o.Count)
	}); err != nil {
		return 0, err
	}
	off += n

	if n, err = record.EncodeOptional(buf, off, o.HasScore, func(buf []byte, offset int) (int, error) {
		return wire.EncodeF64(buf, offset, o.Score)
	}); err != nil {
		return 0, err
	}
	off += n

	return off, nil
}

// DecodeFromSlice reads the record starting at offset 0 of buf.
func (o *Optionals) DecodeFromSlice(buf []byte) (int, error) {
	off := 0

	present, n, err := record.DecodeOptional(buf, off, func(buf []byte, offset int) (int, error) {
		s, n, err := wire.DecodeString(buf, offset)
		o.Name = s
		return n, err
	})
	if err != nil {
		return 0, err
	}
	o.HasName = present
	off += n

	if present, n, err = record.DecodeOptional(buf, off, func(buf []byte, offset int) (int, error) {
		v, n, err := wire.DecodeU32(buf, offset)
		o.Count = v
		return n, err
	}); err != nil {
		return 0, err
	}
	o.HasCount = present
	off += n

	if present, n, err = record.DecodeOptional(buf, off, func(buf []byte, offset int) (int, error) {
		v, n, err := wire.DecodeF64(buf, offset)
		o.Score = v
		return n, err
	}); err != nil {
		return 0, err
	}
	o.HasScore = present
	off += n

	return off, nil
}

// Encode writes the record to w using the streaming codec.
func (o Optionals) Encode(w io.Writer) error {
	sw := stream.NewWriter(w)
	if err := record.WriteOptional(sw, o.HasName, func(sw *stream.Writer) error {
		return sw.WriteString(o.Name)
	}); err != nil {
		return err
	}
	if err := record.WriteOptional(sw, o.HasCount, func(sw *stream.Writer) error {
		return sw.WriteU32(o.Count)
	}); err != nil {
		return err
	}
	return record.WriteOptional(sw, o.HasScore, func(sw *stream.Writer) error {
		return sw.WriteF64(o.Score)
	})
}

// Decode reads the record from r using the streaming codec.
func (o *Optionals) Decode(r io.Reader) error {
	sr := stream.NewReader(r)
	present, err := record.ReadOptional(sr, func(sr *stream.Reader) error {
		s, err := sr.ReadString()
		o.Name = s
		return err
	})
	if err != nil {
		return err
	}
	o.HasName = present

	if present, err = record.ReadOptional(sr, func(sr *stream.Reader) error {
		v, err := sr.ReadU32()
		o.Count = v
		return err
	}); err != nil {
		return err
	}
	o.HasCount = present

	if present, err = record.ReadOptional(sr, func(sr *stream.Reader) error {
		v, err := sr.ReadF64()
		o.Score = v
		return err
	}); err != nil {
		return err
	}
	o.HasScore = present

	return nil
}
