package record

import "github.com/marmos91/sdp/pkg/wire"

// EncodeRecordArray writes a u32 element count followed by each element's
// own EncodeToSlice output, in order.
func EncodeRecordArray[T Encoder](buf []byte, offset int, vals []T) (int, error) {
	if _, err := wire.EncodeU32(buf, offset, uint32(len(vals))); err != nil {
		return 0, err
	}
	written := 4
	for _, v := range vals {
		n, err := v.EncodeToSlice(buf[offset+written:])
		if err != nil {
			return 0, err
		}
		written += n
	}
	return written, nil
}

// DecodeRecordArray reads a u32 element count followed by that many
// records, each decoded with *T's DecodeFromSlice. PT pins *T to the
// Decoder interface so callers never pass a value type that can't be
// decoded into.
func DecodeRecordArray[T any, PT interface {
	*T
	Decoder
}](buf []byte, offset int) ([]T, int, error) {
	count, _, err := wire.DecodeU32(buf, offset)
	if err != nil {
		return nil, 0, err
	}
	if count > wire.MaxArraySize {
		return nil, 0, &wire.ArrayTooLarge{Size: count, Max: wire.MaxArraySize}
	}
	out := make([]T, count)
	consumed := 4
	for i := range out {
		n, err := PT(&out[i]).DecodeFromSlice(buf[offset+consumed:])
		if err != nil {
			return nil, 0, err
		}
		consumed += n
	}
	return out, consumed, nil
}
