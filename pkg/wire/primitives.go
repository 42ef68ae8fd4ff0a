package wire

import (
	"encoding/binary"
	"math"
)

// Widths of the fixed-size wire primitives, in bytes.
const (
	widthBool = 1
	widthU8   = 1
	widthI8   = 1
	widthU16  = 2
	widthI16  = 2
	widthU32  = 4
	widthI32  = 4
	widthU64  = 8
	widthI64  = 8
	widthF32  = 4
	widthF64  = 8
)

func need(buf []byte, offset, width int) error {
	if offset < 0 || offset+width > len(buf) {
		available := len(buf) - offset
		if available < 0 {
			available = 0
		}
		return bufferTooSmall(width, available)
	}
	return nil
}

// EncodeBool writes a single presence-style byte: 0 for false, 1 for true.
func EncodeBool(buf []byte, offset int, v bool) (int, error) {
	if err := need(buf, offset, widthBool); err != nil {
		return 0, err
	}
	if v {
		buf[offset] = 1
	} else {
		buf[offset] = 0
	}
	return widthBool, nil
}

// DecodeBool reads a single bool byte. Any value other than 0 or 1 is
// rejected with InvalidBool.
func DecodeBool(buf []byte, offset int) (bool, int, error) {
	if err := need(buf, offset, widthBool); err != nil {
		return false, 0, err
	}
	switch buf[offset] {
	case 0:
		return false, widthBool, nil
	case 1:
		return true, widthBool, nil
	default:
		return false, 0, &InvalidBool{Value: buf[offset]}
	}
}

// EncodeU8 writes a single raw byte.
func EncodeU8(buf []byte, offset int, v uint8) (int, error) {
	if err := need(buf, offset, widthU8); err != nil {
		return 0, err
	}
	buf[offset] = v
	return widthU8, nil
}

// DecodeU8 reads a single raw byte.
func DecodeU8(buf []byte, offset int) (uint8, int, error) {
	if err := need(buf, offset, widthU8); err != nil {
		return 0, 0, err
	}
	return buf[offset], widthU8, nil
}

// EncodeI8 writes a single raw byte holding a two's-complement int8.
func EncodeI8(buf []byte, offset int, v int8) (int, error) {
	return EncodeU8(buf, offset, uint8(v))
}

// DecodeI8 reads a single raw byte as a two's-complement int8.
func DecodeI8(buf []byte, offset int) (int8, int, error) {
	v, n, err := DecodeU8(buf, offset)
	return int8(v), n, err
}

// EncodeU16 writes a little-endian uint16.
func EncodeU16(buf []byte, offset int, v uint16) (int, error) {
	if err := need(buf, offset, widthU16); err != nil {
		return 0, err
	}
	binary.LittleEndian.PutUint16(buf[offset:], v)
	return widthU16, nil
}

// DecodeU16 reads a little-endian uint16.
func DecodeU16(buf []byte, offset int) (uint16, int, error) {
	if err := need(buf, offset, widthU16); err != nil {
		return 0, 0, err
	}
	return binary.LittleEndian.Uint16(buf[offset:]), widthU16, nil
}

// EncodeI16 writes a little-endian two's-complement int16.
func EncodeI16(buf []byte, offset int, v int16) (int, error) {
	return EncodeU16(buf, offset, uint16(v))
}

// DecodeI16 reads a little-endian two's-complement int16.
func DecodeI16(buf []byte, offset int) (int16, int, error) {
	v, n, err := DecodeU16(buf, offset)
	return int16(v), n, err
}

// EncodeU32 writes a little-endian uint32.
func EncodeU32(buf []byte, offset int, v uint32) (int, error) {
	if err := need(buf, offset, widthU32); err != nil {
		return 0, err
	}
	binary.LittleEndian.PutUint32(buf[offset:], v)
	return widthU32, nil
}

// DecodeU32 reads a little-endian uint32.
func DecodeU32(buf []byte, offset int) (uint32, int, error) {
	if err := need(buf, offset, widthU32); err != nil {
		return 0, 0, err
	}
	return binary.LittleEndian.Uint32(buf[offset:]), widthU32, nil
}

// EncodeI32 writes a little-endian two's-complement int32.
func EncodeI32(buf []byte, offset int, v int32) (int, error) {
	return EncodeU32(buf, offset, uint32(v))
}

// DecodeI32 reads a little-endian two's-complement int32.
func DecodeI32(buf []byte, offset int) (int32, int, error) {
	v, n, err := DecodeU32(buf, offset)
	return int32(v), n, err
}

// EncodeU64 writes a little-endian uint64.
func EncodeU64(buf []byte, offset int, v uint64) (int, error) {
	if err := need(buf, offset, widthU64); err != nil {
		return 0, err
	}
	binary.LittleEndian.PutUint64(buf[offset:], v)
	return widthU64, nil
}

// DecodeU64 reads a little-endian uint64.
func DecodeU64(buf []byte, offset int) (uint64, int, error) {
	if err := need(buf, offset, widthU64); err != nil {
		return 0, 0, err
	}
	return binary.LittleEndian.Uint64(buf[offset:]), widthU64, nil
}

// EncodeI64 writes a little-endian two's-complement int64.
func EncodeI64(buf []byte, offset int, v int64) (int, error) {
	return EncodeU64(buf, offset, uint64(v))
}

// DecodeI64 reads a little-endian two's-complement int64.
func DecodeI64(buf []byte, offset int) (int64, int, error) {
	v, n, err := DecodeU64(buf, offset)
	return int64(v), n, err
}

// EncodeF32 writes an IEEE-754 binary32, little-endian.
func EncodeF32(buf []byte, offset int, v float32) (int, error) {
	return EncodeU32(buf, offset, math.Float32bits(v))
}

// DecodeF32 reads an IEEE-754 binary32, little-endian. NaN and infinities
// round-trip bit-exactly since the conversion never normalizes payloads.
func DecodeF32(buf []byte, offset int) (float32, int, error) {
	v, n, err := DecodeU32(buf, offset)
	return math.Float32frombits(v), n, err
}

// EncodeF64 writes an IEEE-754 binary64, little-endian.
func EncodeF64(buf []byte, offset int, v float64) (int, error) {
	return EncodeU64(buf, offset, math.Float64bits(v))
}

// DecodeF64 reads an IEEE-754 binary64, little-endian.
func DecodeF64(buf []byte, offset int) (float64, int, error) {
	v, n, err := DecodeU64(buf, offset)
	return math.Float64frombits(v), n, err
}
