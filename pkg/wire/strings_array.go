package wire

// EncodeStringArray writes a u32 element count followed by each string in
// turn, each encoded with its own length prefix (§3: "array of string").
func EncodeStringArray(buf []byte, offset int, vals []string) (int, error) {
	if err := need(buf, offset, widthU32); err != nil {
		return 0, err
	}
	if _, err := EncodeU32(buf, offset, uint32(len(vals))); err != nil {
		return 0, err
	}
	written := widthU32
	for _, s := range vals {
		n, err := EncodeString(buf, offset+written, s)
		if err != nil {
			return 0, err
		}
		written += n
	}
	return written, nil
}

// DecodeStringArray reads a u32 element count followed by that many
// length-prefixed strings.
func DecodeStringArray(buf []byte, offset int) ([]string, int, error) {
	count, _, err := DecodeU32(buf, offset)
	if err != nil {
		return nil, 0, err
	}
	if err := checkArraySize(count); err != nil {
		return nil, 0, err
	}
	out := make([]string, 0, count)
	consumed := widthU32
	for i := uint32(0); i < count; i++ {
		s, n, err := DecodeString(buf, offset+consumed)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, s)
		consumed += n
	}
	return out, consumed, nil
}
