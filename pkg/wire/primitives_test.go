package wire

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitivesRoundTrip(t *testing.T) {
	buf := make([]byte, 8)

	n, err := EncodeU8(buf, 0, 0xAB)
	require.NoError(t, err)
	v, m, err := DecodeU8(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, uint8(0xAB), v)

	n, err = EncodeI8(buf, 0, -7)
	require.NoError(t, err)
	iv, m, err := DecodeI8(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, int8(-7), iv)

	n, err = EncodeU16(buf, 0, 0xBEEF)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	u16, _, err := DecodeU16(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xBEEF), u16)

	n, err = EncodeU32(buf, 0, 0xDEADBEEF)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	u32, _, err := DecodeU32(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), u32)

	n, err = EncodeU64(buf, 0, 0x0123456789ABCDEF)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	u64, _, err := DecodeU64(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0123456789ABCDEF), u64)

	n, err = EncodeI64(buf, 0, math.MinInt64)
	require.NoError(t, err)
	i64, _, err := DecodeI64(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, n, 8)
	assert.Equal(t, int64(math.MinInt64), i64)
}

func TestFloatRoundTrip(t *testing.T) {
	buf := make([]byte, 8)

	for _, v := range []float32{0, -0, 1.5, -3.25, float32(math.Inf(1)), float32(math.Inf(-1))} {
		_, err := EncodeF32(buf, 0, v)
		require.NoError(t, err)
		got, _, err := DecodeF32(buf, 0)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	_, err := EncodeF32(buf, 0, float32(math.NaN()))
	require.NoError(t, err)
	got, _, err := DecodeF32(buf, 0)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(got)))

	for _, v := range []float64{0, -0, 2.71828, -1e300, math.Inf(1), math.Inf(-1)} {
		_, err := EncodeF64(buf, 0, v)
		require.NoError(t, err)
		got, _, err := DecodeF64(buf, 0)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestBoolEncoding(t *testing.T) {
	buf := make([]byte, 1)

	_, err := EncodeBool(buf, 0, true)
	require.NoError(t, err)
	assert.Equal(t, byte(1), buf[0])

	_, err = EncodeBool(buf, 0, false)
	require.NoError(t, err)
	assert.Equal(t, byte(0), buf[0])

	buf[0] = 2
	_, _, err = DecodeBool(buf, 0)
	var invalid *InvalidBool
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, byte(2), invalid.Value)
}

func TestBufferTooSmall(t *testing.T) {
	widths := map[string]func([]byte, int) error{
		"u8":  func(b []byte, o int) error { _, _, err := DecodeU8(b, o); return err },
		"u16": func(b []byte, o int) error { _, _, err := DecodeU16(b, o); return err },
		"u32": func(b []byte, o int) error { _, _, err := DecodeU32(b, o); return err },
		"u64": func(b []byte, o int) error { _, _, err := DecodeU64(b, o); return err },
		"f32": func(b []byte, o int) error { _, _, err := DecodeF32(b, o); return err },
		"f64": func(b []byte, o int) error { _, _, err := DecodeF64(b, o); return err },
	}
	width := map[string]int{"u8": 1, "u16": 2, "u32": 4, "u64": 8, "f32": 4, "f64": 8}

	for name, decode := range widths {
		w := width[name]
		if w <= 1 {
			continue
		}
		buf := make([]byte, w-1)
		err := decode(buf, 0)
		var tooSmall *BufferTooSmall
		require.ErrorAsf(t, err, &tooSmall, "%s: expected BufferTooSmall", name)
		assert.Equal(t, w, tooSmall.Needed)
		assert.Equal(t, w-1, tooSmall.Available)
	}
}

func TestMisalignedOffsets(t *testing.T) {
	for _, offset := range []int{1, 2, 3, 5, 7} {
		buf := make([]byte, offset+8)
		n, err := EncodeU64(buf, offset, 0x1122334455667788)
		require.NoError(t, err)
		assert.Equal(t, 8, n)
		got, m, err := DecodeU64(buf, offset)
		require.NoError(t, err)
		assert.Equal(t, 8, m)
		assert.Equal(t, uint64(0x1122334455667788), got)
	}
}
