package wire

import "unicode/utf8"

// EncodeString writes a u32 byte-length prefix followed by the string's
// UTF-8 bytes. Callers are responsible for supplying valid UTF-8 (§3);
// the encoder does not re-validate on the way out.
func EncodeString(buf []byte, offset int, s string) (int, error) {
	return encodeOpaque(buf, offset, []byte(s))
}

// DecodeString reads a u32 length prefix followed by that many bytes,
// validated as UTF-8 before being copied into the returned string.
// Decoders reject any length prefix exceeding MaxArraySize before
// attempting to read the payload.
func DecodeString(buf []byte, offset int) (string, int, error) {
	data, n, err := decodeOpaque(buf, offset)
	if err != nil {
		return "", 0, err
	}
	if !utf8.Valid(data) {
		return "", 0, &InvalidUTF8{}
	}
	return string(data), n, nil
}

// EncodeBytes writes a u32 byte-length prefix followed by the raw payload.
func EncodeBytes(buf []byte, offset int, data []byte) (int, error) {
	return encodeOpaque(buf, offset, data)
}

// DecodeBytes reads a u32 length prefix followed by that many raw bytes.
// No UTF-8 validation is performed.
func DecodeBytes(buf []byte, offset int) ([]byte, int, error) {
	return decodeOpaque(buf, offset)
}

// encodeOpaque is the shared length-prefixed-payload encoder behind
// EncodeString and EncodeBytes.
func encodeOpaque(buf []byte, offset int, data []byte) (int, error) {
	total := widthU32 + len(data)
	if err := need(buf, offset, total); err != nil {
		return 0, err
	}
	if _, err := EncodeU32(buf, offset, uint32(len(data))); err != nil {
		return 0, err
	}
	copy(buf[offset+widthU32:offset+total], data)
	return total, nil
}

// decodeOpaque reads the u32 length prefix, checks it against MaxArraySize,
// checks the total required range against the buffer, and only then
// copies the payload into a freshly allocated slice. No partial allocation
// occurs on failure.
func decodeOpaque(buf []byte, offset int) ([]byte, int, error) {
	length, _, err := DecodeU32(buf, offset)
	if err != nil {
		return nil, 0, err
	}
	if err := checkArraySize(length); err != nil {
		return nil, 0, err
	}
	total := widthU32 + int(length)
	if err := need(buf, offset, total); err != nil {
		return nil, 0, err
	}
	data := make([]byte, length)
	copy(data, buf[offset+widthU32:offset+total])
	return data, total, nil
}
