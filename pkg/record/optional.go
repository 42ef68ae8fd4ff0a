package record

import "github.com/marmos91/sdp/pkg/wire"

// EncodeOptional writes the one-byte presence flag every optional field
// carries on the wire, then — iff present — the payload via encodePayload.
// The presence byte is written unconditionally, even when several
// optionals are adjacent; fields never share a bitmap.
func EncodeOptional(buf []byte, offset int, present bool, encodePayload func(buf []byte, offset int) (int, error)) (int, error) {
	n, err := wire.EncodeBool(buf, offset, present)
	if err != nil {
		return 0, err
	}
	if !present {
		return n, nil
	}
	m, err := encodePayload(buf, offset+n)
	if err != nil {
		return 0, err
	}
	return n + m, nil
}

// DecodeOptional reads the presence flag and, iff present, decodes the
// payload via decodePayload. ok reports presence.
func DecodeOptional(buf []byte, offset int, decodePayload func(buf []byte, offset int) (int, error)) (ok bool, consumed int, err error) {
	present, n, err := wire.DecodeBool(buf, offset)
	if err != nil {
		return false, 0, err
	}
	if !present {
		return false, n, nil
	}
	m, err := decodePayload(buf, offset+n)
	if err != nil {
		return false, 0, err
	}
	return true, n + m, nil
}
