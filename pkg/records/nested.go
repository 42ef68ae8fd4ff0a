package records

import (
	"io"

	"github.com/marmos91/sdp/pkg/record"
	"github.com/marmos91/sdp/pkg/stream"
	"github.com/marmos91/sdp/pkg/wire"
)

// Point is a small fixed-size record nested inline by Line, with no
// separator between its fields.
type Point struct {
	X float64
	Y float64
}

// EncodedSize returns the exact byte count EncodeToSlice will write.
func (p Point) EncodedSize() int { return 8 + 8 }

// EncodeToSlice writes the record starting at offset 0 of buf.
func (p Point) EncodeToSlice(buf []byte) (int, error) {
	n, err := wire.EncodeF64(buf, 0, p.X)
	if err != nil {
		return 0, err
	}
	m, err := wire.EncodeF64(buf, n, p.Y)
	if err != nil {
		return 0, err
	}
	return n + m, nil
}

// DecodeFromSlice reads the record starting at offset 0 of buf.
func (p *Point) DecodeFromSlice(buf []byte) (int, error) {
	x, n, err := wire.DecodeF64(buf, 0)
	if err != nil {
		return 0, err
	}
	y, m, err := wire.DecodeF64(buf, n)
	if err != nil {
		return 0, err
	}
	p.X, p.Y = x, y
	return n + m, nil
}

// Encode writes the record to w using the streaming codec.
func (p Point) Encode(w io.Writer) error {
	sw := stream.NewWriter(w)
	if err := sw.WriteF64(p.X); err != nil {
		return err
	}
	return sw.WriteF64(p.Y)
}

// Decode reads the record from r using the streaming codec.
func (p *Point) Decode(r io.Reader) error {
	sr := stream.NewReader(r)
	x, err := sr.ReadF64()
	if err != nil {
		return err
	}
	y, err := sr.ReadF64()
	if err != nil {
		return err
	}
	p.X, p.Y = x, y
	return nil
}

// Line nests a Point inline, encodes an array of Points, and carries a
// label, exercising record-in-record composition and an array-of-record
// field.
type Line struct {
	Label   string
	Origin  Point
	Segment []Point
}

// DefaultLine returns the field-wise zero value.
func DefaultLine() Line { return Line{} }

// EncodedSize returns the exact byte count EncodeToSlice will write.
func (l Line) EncodedSize() int {
	n := 4 + len(l.Label)
	n += l.Origin.EncodedSize()
	n += 4
	for i := range l.Segment {
		n += l.Segment[i].EncodedSize()
	}
	return n
}

// EncodeToSlice writes the record starting at offset 0 of buf.
func (l Line) EncodeToSlice(buf []byte) (int, error) {
	off := 0
	n, err := wire.EncodeString(buf, off, l.Label)
	if err != nil {
		return 0, err
	}
	off += n

	m, err := l.Origin.EncodeToSlice(buf[off:])
	if err != nil {
		return 0, err
	}
	off += m

	n, err = record.EncodeRecordArray(buf, off, l.Segment)
	if err != nil {
		return 0, err
	}
	off += n

	return off, nil
}

// DecodeFromSlice reads the record starting at offset 0 of buf.
func (l *Line) DecodeFromSlice(buf []byte) (int, error) {
	off := 0
	label, n, err := wire.DecodeString(buf, off)
	if err != nil {
		return 0, err
	}
	l.Label = label
	off += n

	m, err := l.Origin.DecodeFromSlice(buf[off:])
	if err != nil {
		return 0, err
	}
	off += m

	segment, n, err := record.DecodeRecordArray[Point](buf, off)
	if err != nil {
		return 0, err
	}
	l.Segment = segment
	off += n

	return off, nil
}

// Encode writes the record to w using the streaming codec.
func (l Line) Encode(w io.Writer) error {
	sw := stream.NewWriter(w)
	if err := sw.WriteString(l.Label); err != nil {
		return err
	}
	if err := l.Origin.Encode(w); err != nil {
		return err
	}
	return record.WriteRecordArray(w, l.Segment)
}

// Decode reads the record from r using the streaming codec.
func (l *Line) Decode(r io.Reader) error {
	sr := stream.NewReader(r)
	label, err := sr.ReadString()
	if err != nil {
		return err
	}
	l.Label = label

	if err := l.Origin.Decode(r); err != nil {
		return err
	}

	segment, err := record.ReadRecordArray[Point](r)
	if err != nil {
		return err
	}
	l.Segment = segment
	return nil
}
