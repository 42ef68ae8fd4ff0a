// Package record defines the contract generated record types must satisfy:
// sizing, slice-based encode/decode, and a streaming encode/decode pair.
// The schema compiler that produces record types is a separate concern;
// this package specifies the generated-code surface by interface, not by
// shape.
package record

import "io"

// Encoder is implemented by every schema record. EncodedSize must equal
// the number of bytes EncodeToSlice writes for the same receiver value.
type Encoder interface {
	// EncodedSize returns the exact byte count the encoder will write.
	EncodedSize() int
	// EncodeToSlice writes the record starting at offset 0 of buf and
	// returns the number of bytes written.
	EncodeToSlice(buf []byte) (int, error)
	// Encode writes the record to w using the streaming codec. Produces
	// the same bytes as EncodeToSlice.
	Encode(w io.Writer) error
}

// Decoder is implemented by every schema record's pointer receiver: decode
// methods populate the receiver in place rather than constructing and
// returning a new value, matching the mutate-in-place convention of
// XDR-style decoders.
type Decoder interface {
	// DecodeFromSlice reads a record starting at offset 0 of buf. It need
	// not consume all of buf; it returns the number of bytes consumed.
	DecodeFromSlice(buf []byte) (int, error)
	// Decode reads a record from r using the streaming codec.
	Decode(r io.Reader) error
}

// Record is the full generated-code contract: sizing plus both the
// slice-based and streaming encode/decode surfaces.
type Record interface {
	Encoder
	Decoder
}
