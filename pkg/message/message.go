// Package message implements SDP message-mode framing and dispatch: a
// length+type-tag envelope that lets a dispatcher route a polymorphic
// stream of records to the correct per-record decoder by integer tag,
// with no virtual dispatch or dynamic type identifiers — the tag alone
// identifies the variant.
package message

import (
	"fmt"

	"github.com/marmos91/sdp/pkg/record"
	"github.com/marmos91/sdp/pkg/wire"
)

// envelopeHeaderSize is the fixed 8-byte header: u32 payload_length + u32
// type_tag.
const envelopeHeaderSize = 8

// UnknownMessageType is returned when a dispatcher has no decoder
// registered for a tag.
type UnknownMessageType struct {
	Tag uint32
}

func (e *UnknownMessageType) Error() string {
	return fmt.Sprintf("message: unknown message type tag %d", e.Tag)
}

// Envelope is the decoded form of a message-mode header.
type Envelope struct {
	PayloadLength uint32
	TypeTag       uint32
}

// EncodeEnvelope writes the 8-byte header (payload length, type tag)
// followed by payload, starting at offset 0 of buf.
func EncodeEnvelope(buf []byte, typeTag uint32, payload []byte) (int, error) {
	total := envelopeHeaderSize + len(payload)
	if len(buf) < total {
		return 0, &wire.BufferTooSmall{Needed: total, Available: len(buf)}
	}
	if _, err := wire.EncodeU32(buf, 0, uint32(len(payload))); err != nil {
		return 0, err
	}
	if _, err := wire.EncodeU32(buf, 4, typeTag); err != nil {
		return 0, err
	}
	copy(buf[envelopeHeaderSize:total], payload)
	return total, nil
}

// DecodeEnvelope reads the 8-byte header and returns the envelope plus a
// slice over exactly PayloadLength payload bytes. Surplus bytes in buf
// past the payload are ignored, allowing stream framing.
func DecodeEnvelope(buf []byte) (Envelope, []byte, error) {
	if len(buf) < envelopeHeaderSize {
		return Envelope{}, nil, &wire.BufferTooSmall{Needed: envelopeHeaderSize, Available: len(buf)}
	}
	payloadLength, _, err := wire.DecodeU32(buf, 0)
	if err != nil {
		return Envelope{}, nil, err
	}
	typeTag, _, err := wire.DecodeU32(buf, 4)
	if err != nil {
		return Envelope{}, nil, err
	}
	if err := wireArrayBound(payloadLength); err != nil {
		return Envelope{}, nil, err
	}
	available := len(buf) - envelopeHeaderSize
	if int(payloadLength) > available {
		return Envelope{}, nil, &wire.BufferTooSmall{Needed: int(payloadLength), Available: available}
	}
	env := Envelope{PayloadLength: payloadLength, TypeTag: typeTag}
	return env, buf[envelopeHeaderSize : envelopeHeaderSize+int(payloadLength)], nil
}

func wireArrayBound(n uint32) error {
	if n > wire.MaxArraySize {
		return &wire.ArrayTooLarge{Size: n, Max: wire.MaxArraySize}
	}
	return nil
}

// DecoderFactory produces a fresh, zero-value record.Decoder for a
// registered type tag.
type DecoderFactory func() record.Decoder

// Dispatcher routes framed messages to the record decoder registered for
// their type tag. Modeled as a tagged union over the known record
// variants: a lookup from tag to variant, never a type switch over
// concrete Go types.
type Dispatcher struct {
	factories map[uint32]DecoderFactory
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{factories: make(map[uint32]DecoderFactory)}
}

// Register associates a type tag with a decoder factory. Registering the
// same tag twice overwrites the previous factory.
func (d *Dispatcher) Register(typeTag uint32, factory DecoderFactory) {
	d.factories[typeTag] = factory
}

// Dispatch decodes the envelope at the start of buf and delegates the
// payload slice to the decoder registered for its type tag.
func (d *Dispatcher) Dispatch(buf []byte) (record.Decoder, error) {
	env, payload, err := DecodeEnvelope(buf)
	if err != nil {
		return nil, err
	}
	factory, ok := d.factories[env.TypeTag]
	if !ok {
		return nil, &UnknownMessageType{Tag: env.TypeTag}
	}
	rec := factory()
	if _, err := rec.DecodeFromSlice(payload); err != nil {
		return nil, err
	}
	return rec, nil
}
