package stream

import "github.com/marmos91/sdp/pkg/wire"

// WriteU32Array writes a u32 element count followed by little-endian u32s.
func (e *Writer) WriteU32Array(vals []uint32) error {
	if err := e.WriteU32(uint32(len(vals))); err != nil {
		return err
	}
	for _, v := range vals {
		if err := e.WriteU32(v); err != nil {
			return err
		}
	}
	return nil
}

// ReadU32Array reads a u32 element count followed by that many
// little-endian u32s, rejecting counts above wire.MaxArraySize before
// allocating.
func (d *Reader) ReadU32Array() ([]uint32, error) {
	n, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	if n > wire.MaxArraySize {
		return nil, &wire.ArrayTooLarge{Size: n, Max: wire.MaxArraySize}
	}
	out := make([]uint32, n)
	for i := range out {
		v, err := d.ReadU32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// WriteU64Array writes a u32 element count followed by little-endian u64s.
func (e *Writer) WriteU64Array(vals []uint64) error {
	if err := e.WriteU32(uint32(len(vals))); err != nil {
		return err
	}
	for _, v := range vals {
		if err := e.WriteU64(v); err != nil {
			return err
		}
	}
	return nil
}

// ReadU64Array reads a u32 element count followed by that many
// little-endian u64s.
func (d *Reader) ReadU64Array() ([]uint64, error) {
	n, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	if n > wire.MaxArraySize {
		return nil, &wire.ArrayTooLarge{Size: n, Max: wire.MaxArraySize}
	}
	out := make([]uint64, n)
	for i := range out {
		v, err := d.ReadU64()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// WriteF64Array writes a u32 element count followed by little-endian
// IEEE-754 binary64 values.
func (e *Writer) WriteF64Array(vals []float64) error {
	if err := e.WriteU32(uint32(len(vals))); err != nil {
		return err
	}
	for _, v := range vals {
		if err := e.WriteF64(v); err != nil {
			return err
		}
	}
	return nil
}

// ReadF64Array reads a u32 element count followed by that many
// little-endian IEEE-754 binary64 values.
func (d *Reader) ReadF64Array() ([]float64, error) {
	n, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	if n > wire.MaxArraySize {
		return nil, &wire.ArrayTooLarge{Size: n, Max: wire.MaxArraySize}
	}
	out := make([]float64, n)
	for i := range out {
		v, err := d.ReadF64()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// WriteStringArray writes a u32 element count followed by each string in
// turn, each with its own length prefix.
func (e *Writer) WriteStringArray(vals []string) error {
	if err := e.WriteU32(uint32(len(vals))); err != nil {
		return err
	}
	for _, s := range vals {
		if err := e.WriteString(s); err != nil {
			return err
		}
	}
	return nil
}

// ReadStringArray reads a u32 element count followed by that many
// length-prefixed strings.
func (d *Reader) ReadStringArray() ([]string, error) {
	n, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	if n > wire.MaxArraySize {
		return nil, &wire.ArrayTooLarge{Size: n, Max: wire.MaxArraySize}
	}
	out := make([]string, 0, n)
	for i := uint32(0); i < n; i++ {
		s, err := d.ReadString()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
