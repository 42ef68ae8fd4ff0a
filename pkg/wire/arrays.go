package wire

// Element-count thresholds at or above which DecodeU32Array and
// DecodeU64Array hand the payload to their separate bulk helper instead of
// the inline per-element loop. They are tuning parameters only: both paths
// read the same little-endian bytes with the same shift/mask logic, so
// changing these thresholds can never change a decoded value or what ends
// up on the wire.
const (
	bulkThreshold4Byte = 64
	bulkThreshold8Byte = 32
)

// --- u8 / i8: the only widths with a genuine zero-copy tier -----------------
//
// A byte array has no endianness to account for. EncodeU8Array and
// DecodeU8Array reduce to a single contiguous copy regardless of element
// count; the i8 variants convert each byte in a plain per-element loop.

// EncodeU8Array writes a u32 element count followed by the raw bytes.
func EncodeU8Array(buf []byte, offset int, vals []uint8) (int, error) {
	total := widthU32 + len(vals)
	if err := need(buf, offset, total); err != nil {
		return 0, err
	}
	if _, err := EncodeU32(buf, offset, uint32(len(vals))); err != nil {
		return 0, err
	}
	copy(buf[offset+widthU32:offset+total], vals)
	return total, nil
}

// DecodeU8Array reads a u32 element count followed by that many raw bytes.
func DecodeU8Array(buf []byte, offset int) ([]uint8, int, error) {
	n, _, err := DecodeU32(buf, offset)
	if err != nil {
		return nil, 0, err
	}
	if err := checkArraySize(n); err != nil {
		return nil, 0, err
	}
	total := widthU32 + int(n)
	if err := need(buf, offset, total); err != nil {
		return nil, 0, err
	}
	out := make([]uint8, n)
	copy(out, buf[offset+widthU32:offset+total])
	return out, total, nil
}

// EncodeI8Array writes a u32 element count followed by the raw bytes.
func EncodeI8Array(buf []byte, offset int, vals []int8) (int, error) {
	total := widthU32 + len(vals)
	if err := need(buf, offset, total); err != nil {
		return 0, err
	}
	if _, err := EncodeU32(buf, offset, uint32(len(vals))); err != nil {
		return 0, err
	}
	dst := buf[offset+widthU32 : offset+total]
	for i, v := range vals {
		dst[i] = byte(v)
	}
	return total, nil
}

// DecodeI8Array reads a u32 element count followed by that many raw bytes.
func DecodeI8Array(buf []byte, offset int) ([]int8, int, error) {
	n, _, err := DecodeU32(buf, offset)
	if err != nil {
		return nil, 0, err
	}
	if err := checkArraySize(n); err != nil {
		return nil, 0, err
	}
	total := widthU32 + int(n)
	if err := need(buf, offset, total); err != nil {
		return nil, 0, err
	}
	src := buf[offset+widthU32 : offset+total]
	out := make([]int8, n)
	for i, b := range src {
		out[i] = int8(b)
	}
	return out, total, nil
}

// --- fixed-width numeric arrays ---------------------------------------------
//
// Every codec below assembles or splits each element with explicit shifts
// and masks, never by reinterpreting a pointer, so the bytes are
// little-endian regardless of the host's native byte order and no separate
// byte-swap pass exists. Alignment is never inspected: an array is read
// and written the same way at any offset. DecodeU32Array and
// DecodeU64Array route counts at or above their threshold to a separate
// bulk helper (decodeU32Bulk, decodeU64Bulk) that runs the same shift/mask
// loop over the payload subslice; every other width uses one inline
// per-element loop. A genuine unsafe zero-copy reinterpretation tier (reading []byte
// as []uint32 directly) was rejected: Go offers no portable guarantee
// that an arbitrary byte slice is aligned for a wider type, so that tier
// would trade a well-defined copy for undefined behavior on some
// architectures.

func encodeFixedArray(buf []byte, offset int, count, width int, write func(dst []byte, i int)) (int, error) {
	total := widthU32 + count*width
	if err := need(buf, offset, total); err != nil {
		return 0, err
	}
	if _, err := EncodeU32(buf, offset, uint32(count)); err != nil {
		return 0, err
	}
	base := offset + widthU32
	for i := 0; i < count; i++ {
		write(buf[base+i*width:base+(i+1)*width], i)
	}
	return total, nil
}

func decodeFixedArrayHeader(buf []byte, offset, width int) (count, total int, err error) {
	n, _, err := DecodeU32(buf, offset)
	if err != nil {
		return 0, 0, err
	}
	if err := checkArraySize(n); err != nil {
		return 0, 0, err
	}
	total = widthU32 + int(n)*width
	if err := need(buf, offset, total); err != nil {
		return 0, 0, err
	}
	return int(n), total, nil
}

// EncodeU16Array writes a u32 element count followed by little-endian u16s.
func EncodeU16Array(buf []byte, offset int, vals []uint16) (int, error) {
	return encodeFixedArray(buf, offset, len(vals), widthU16, func(dst []byte, i int) {
		dst[0] = byte(vals[i])
		dst[1] = byte(vals[i] >> 8)
	})
}

// DecodeU16Array reads a u32 element count followed by that many
// little-endian u16s.
func DecodeU16Array(buf []byte, offset int) ([]uint16, int, error) {
	count, total, err := decodeFixedArrayHeader(buf, offset, widthU16)
	if err != nil {
		return nil, 0, err
	}
	out := make([]uint16, count)
	base := offset + widthU32
	for i := range out {
		p := base + i*widthU16
		out[i] = uint16(buf[p]) | uint16(buf[p+1])<<8
	}
	return out, total, nil
}

// EncodeI16Array writes a u32 element count followed by little-endian i16s.
func EncodeI16Array(buf []byte, offset int, vals []int16) (int, error) {
	return encodeFixedArray(buf, offset, len(vals), widthI16, func(dst []byte, i int) {
		v := uint16(vals[i])
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
	})
}

// DecodeI16Array reads a u32 element count followed by that many
// little-endian i16s.
func DecodeI16Array(buf []byte, offset int) ([]int16, int, error) {
	count, total, err := decodeFixedArrayHeader(buf, offset, widthI16)
	if err != nil {
		return nil, 0, err
	}
	out := make([]int16, count)
	base := offset + widthU32
	for i := range out {
		p := base + i*widthI16
		out[i] = int16(uint16(buf[p]) | uint16(buf[p+1])<<8)
	}
	return out, total, nil
}

// EncodeU32Array writes a u32 element count followed by little-endian u32s.
func EncodeU32Array(buf []byte, offset int, vals []uint32) (int, error) {
	return encodeFixedArray(buf, offset, len(vals), widthU32, func(dst []byte, i int) {
		v := vals[i]
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
		dst[2] = byte(v >> 16)
		dst[3] = byte(v >> 24)
	})
}

// DecodeU32Array reads a u32 element count followed by that many
// little-endian u32s. Counts at or above bulkThreshold4Byte go through
// decodeU32Bulk, which runs the same shift/mask loop over the payload
// subslice; both paths produce identical output.
func DecodeU32Array(buf []byte, offset int) ([]uint32, int, error) {
	count, total, err := decodeFixedArrayHeader(buf, offset, widthU32)
	if err != nil {
		return nil, 0, err
	}
	out := make([]uint32, count)
	base := offset + widthU32
	if count >= bulkThreshold4Byte {
		decodeU32Bulk(buf[base:base+count*widthU32], out)
	} else {
		for i := range out {
			p := base + i*widthU32
			out[i] = uint32(buf[p]) | uint32(buf[p+1])<<8 | uint32(buf[p+2])<<16 | uint32(buf[p+3])<<24
		}
	}
	return out, total, nil
}

// decodeU32Bulk decodes a contiguous run of little-endian u32s. Split out
// so the bulk tier can be benchmarked and tuned independently of the
// element-wise tier.
func decodeU32Bulk(src []byte, out []uint32) {
	for i := range out {
		p := i * widthU32
		out[i] = uint32(src[p]) | uint32(src[p+1])<<8 | uint32(src[p+2])<<16 | uint32(src[p+3])<<24
	}
}

// EncodeI32Array writes a u32 element count followed by little-endian i32s.
func EncodeI32Array(buf []byte, offset int, vals []int32) (int, error) {
	return encodeFixedArray(buf, offset, len(vals), widthI32, func(dst []byte, i int) {
		v := uint32(vals[i])
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
		dst[2] = byte(v >> 16)
		dst[3] = byte(v >> 24)
	})
}

// DecodeI32Array reads a u32 element count followed by that many
// little-endian i32s.
func DecodeI32Array(buf []byte, offset int) ([]int32, int, error) {
	count, total, err := decodeFixedArrayHeader(buf, offset, widthI32)
	if err != nil {
		return nil, 0, err
	}
	out := make([]int32, count)
	base := offset + widthU32
	for i := range out {
		p := base + i*widthI32
		out[i] = int32(uint32(buf[p]) | uint32(buf[p+1])<<8 | uint32(buf[p+2])<<16 | uint32(buf[p+3])<<24)
	}
	return out, total, nil
}

// EncodeU64Array writes a u32 element count followed by little-endian u64s.
func EncodeU64Array(buf []byte, offset int, vals []uint64) (int, error) {
	return encodeFixedArray(buf, offset, len(vals), widthU64, func(dst []byte, i int) {
		v := vals[i]
		for b := 0; b < widthU64; b++ {
			dst[b] = byte(v >> (8 * b))
		}
	})
}

// DecodeU64Array reads a u32 element count followed by that many
// little-endian u64s. Counts at or above bulkThreshold8Byte go through
// decodeU64Bulk, which runs the same loop over the payload subslice.
func DecodeU64Array(buf []byte, offset int) ([]uint64, int, error) {
	count, total, err := decodeFixedArrayHeader(buf, offset, widthU64)
	if err != nil {
		return nil, 0, err
	}
	out := make([]uint64, count)
	base := offset + widthU32
	if count >= bulkThreshold8Byte {
		decodeU64Bulk(buf[base:base+count*widthU64], out)
	} else {
		for i := range out {
			p := base + i*widthU64
			out[i] = decodeU64At(buf, p)
		}
	}
	return out, total, nil
}

func decodeU64Bulk(src []byte, out []uint64) {
	for i := range out {
		p := i * widthU64
		out[i] = decodeU64At(src, p)
	}
}

func decodeU64At(buf []byte, p int) uint64 {
	var v uint64
	for b := 0; b < widthU64; b++ {
		v |= uint64(buf[p+b]) << (8 * b)
	}
	return v
}

// EncodeI64Array writes a u32 element count followed by little-endian i64s.
func EncodeI64Array(buf []byte, offset int, vals []int64) (int, error) {
	return encodeFixedArray(buf, offset, len(vals), widthI64, func(dst []byte, i int) {
		v := uint64(vals[i])
		for b := 0; b < widthI64; b++ {
			dst[b] = byte(v >> (8 * b))
		}
	})
}

// DecodeI64Array reads a u32 element count followed by that many
// little-endian i64s.
func DecodeI64Array(buf []byte, offset int) ([]int64, int, error) {
	count, total, err := decodeFixedArrayHeader(buf, offset, widthI64)
	if err != nil {
		return nil, 0, err
	}
	out := make([]int64, count)
	base := offset + widthU32
	for i := range out {
		p := base + i*widthI64
		out[i] = int64(decodeU64At(buf, p))
	}
	return out, total, nil
}

// EncodeF32Array writes a u32 element count followed by little-endian
// IEEE-754 binary32 values.
func EncodeF32Array(buf []byte, offset int, vals []float32) (int, error) {
	return encodeFixedArray(buf, offset, len(vals), widthF32, func(dst []byte, i int) {
		v := f32bits(vals[i])
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
		dst[2] = byte(v >> 16)
		dst[3] = byte(v >> 24)
	})
}

// DecodeF32Array reads a u32 element count followed by that many
// little-endian IEEE-754 binary32 values. NaN payloads and signed zeros
// round-trip bit-exactly since the bits are never normalized.
func DecodeF32Array(buf []byte, offset int) ([]float32, int, error) {
	count, total, err := decodeFixedArrayHeader(buf, offset, widthF32)
	if err != nil {
		return nil, 0, err
	}
	out := make([]float32, count)
	base := offset + widthU32
	for i := range out {
		p := base + i*widthF32
		bits := uint32(buf[p]) | uint32(buf[p+1])<<8 | uint32(buf[p+2])<<16 | uint32(buf[p+3])<<24
		out[i] = f32frombits(bits)
	}
	return out, total, nil
}

// EncodeF64Array writes a u32 element count followed by little-endian
// IEEE-754 binary64 values.
func EncodeF64Array(buf []byte, offset int, vals []float64) (int, error) {
	return encodeFixedArray(buf, offset, len(vals), widthF64, func(dst []byte, i int) {
		v := f64bits(vals[i])
		for b := 0; b < widthF64; b++ {
			dst[b] = byte(v >> (8 * b))
		}
	})
}

// DecodeF64Array reads a u32 element count followed by that many
// little-endian IEEE-754 binary64 values.
func DecodeF64Array(buf []byte, offset int) ([]float64, int, error) {
	count, total, err := decodeFixedArrayHeader(buf, offset, widthF64)
	if err != nil {
		return nil, 0, err
	}
	out := make([]float64, count)
	base := offset + widthU32
	for i := range out {
		p := base + i*widthF64
		out[i] = f64frombits(decodeU64At(buf, p))
	}
	return out, total, nil
}
