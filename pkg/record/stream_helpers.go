package record

import (
	"io"

	"github.com/marmos91/sdp/pkg/stream"
	"github.com/marmos91/sdp/pkg/wire"
)

// WriteOptional writes the presence flag and, iff present, the payload,
// mirroring EncodeOptional for the streaming API.
func WriteOptional(w *stream.Writer, present bool, writePayload func(w *stream.Writer) error) error {
	if err := w.WriteBool(present); err != nil {
		return err
	}
	if !present {
		return nil
	}
	return writePayload(w)
}

// ReadOptional reads the presence flag and, iff present, the payload.
func ReadOptional(r *stream.Reader, readPayload func(r *stream.Reader) error) (bool, error) {
	present, err := r.ReadBool()
	if err != nil {
		return false, err
	}
	if !present {
		return false, nil
	}
	if err := readPayload(r); err != nil {
		return false, err
	}
	return true, nil
}

// WriteRecordArray writes a u32 element count followed by each element's
// own Encode output, in order. w is the raw io.Writer a record's Encode
// method receives; nested records are written to the same writer, with
// no intervening framing.
func WriteRecordArray[T Encoder](w io.Writer, vals []T) error {
	sw := stream.NewWriter(w)
	if err := sw.WriteU32(uint32(len(vals))); err != nil {
		return err
	}
	for _, v := range vals {
		if err := v.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

// ReadRecordArray reads a u32 element count followed by that many
// records, each decoded with *T's Decode method from the same reader.
func ReadRecordArray[T any, PT interface {
	*T
	Decoder
}](r io.Reader) ([]T, error) {
	sr := stream.NewReader(r)
	count, err := sr.ReadU32()
	if err != nil {
		return nil, err
	}
	if count > wire.MaxArraySize {
		return nil, &wire.ArrayTooLarge{Size: count, Max: wire.MaxArraySize}
	}
	out := make([]T, count)
	for i := range out {
		if err := PT(&out[i]).Decode(r); err != nil {
			return nil, err
		}
	}
	return out, nil
}
