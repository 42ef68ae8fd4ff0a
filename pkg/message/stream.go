package message

import (
	"io"

	"github.com/marmos91/sdp/pkg/record"
	"github.com/marmos91/sdp/pkg/stream"
)

// WriteEnvelope writes the 8-byte header followed by payload to w.
func WriteEnvelope(w io.Writer, typeTag uint32, payload []byte) error {
	sw := stream.NewWriter(w)
	if err := sw.WriteU32(uint32(len(payload))); err != nil {
		return err
	}
	if err := sw.WriteU32(typeTag); err != nil {
		return err
	}
	return sw.WriteRaw(payload)
}

// DispatchStream reads one framed message from r and delegates its
// payload to the decoder registered for its type tag.
func (d *Dispatcher) DispatchStream(r io.Reader) (record.Decoder, error) {
	sr := stream.NewReader(r)
	payloadLength, err := sr.ReadU32()
	if err != nil {
		return nil, err
	}
	typeTag, err := sr.ReadU32()
	if err != nil {
		return nil, err
	}
	if err := wireArrayBound(payloadLength); err != nil {
		return nil, err
	}
	factory, ok := d.factories[typeTag]
	if !ok {
		return nil, &UnknownMessageType{Tag: typeTag}
	}
	rec := factory()
	if err := rec.Decode(io.LimitReader(r, int64(payloadLength))); err != nil {
		return nil, err
	}
	return rec, nil
}
