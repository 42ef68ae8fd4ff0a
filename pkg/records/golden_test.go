package records

import (
	"encoding/hex"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/sdp/pkg/record"
)

func dehex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// TestGoldenEmptyArraysRecord covers concrete scenario 3: five empty
// arrays encode to five 4-byte zero counts, 20 bytes total.
func TestGoldenEmptyArraysRecord(t *testing.T) {
	a := DefaultArrays()
	buf := make([]byte, a.EncodedSize())
	n, err := a.EncodeToSlice(buf)
	require.NoError(t, err)
	assert.Equal(t, 20, n)
	assert.Equal(t, dehex(t, "00000000"+"00000000"+"00000000"+"00000000"+"00000000"), buf)
}

// TestGoldenOptionalAbsent covers concrete scenario 4: an absent optional
// is a single zero presence byte.
func TestGoldenOptionalAbsent(t *testing.T) {
	buf := make([]byte, 1)
	n, err := record.EncodeOptional(buf, 0, false, func(buf []byte, offset int) (int, error) {
		t.Fatal("payload writer must not run when absent")
		return 0, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []byte{0x00}, buf)
}

// TestGoldenPrimitivesEndToEnd covers the end-to-end scenario: every
// scalar field at an extreme value, decoded back bit-exactly (floats by
// bit pattern, not approximate comparison).
func TestGoldenPrimitivesEndToEnd(t *testing.T) {
	p := Primitives{
		U8:  math.MaxUint8,
		U16: math.MaxUint16,
		U32: math.MaxUint32,
		U64: math.MaxUint64,
		I8:  math.MinInt8,
		I16: math.MinInt16,
		I32: math.MinInt32,
		I64: math.MinInt64,
		F32: 3.14159,
		F64: 2.718281828459045,
		B:   true,
		Str: "Hello from Rust!",
	}
	buf := make([]byte, p.EncodedSize())
	n, err := p.EncodeToSlice(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)

	var got Primitives
	_, err = got.DecodeFromSlice(buf)
	require.NoError(t, err)

	assert.Equal(t, p.U8, got.U8)
	assert.Equal(t, p.U16, got.U16)
	assert.Equal(t, p.U32, got.U32)
	assert.Equal(t, p.U64, got.U64)
	assert.Equal(t, p.I8, got.I8)
	assert.Equal(t, p.I16, got.I16)
	assert.Equal(t, p.I32, got.I32)
	assert.Equal(t, p.I64, got.I64)
	assert.Equal(t, math.Float32bits(p.F32), math.Float32bits(got.F32))
	assert.Equal(t, math.Float64bits(p.F64), math.Float64bits(got.F64))
	assert.Equal(t, p.B, got.B)
	assert.Equal(t, p.Str, got.Str)
}

// TestIdempotentReencode covers scenario 7: re-encoding a decoded record
// reproduces the original bytes.
func TestIdempotentReencode(t *testing.T) {
	original := Line{
		Label:   "idempotent",
		Origin:  Point{X: 1, Y: 2},
		Segment: []Point{{X: 3, Y: 4}, {X: 5, Y: 6}},
	}
	buf := make([]byte, original.EncodedSize())
	_, err := original.EncodeToSlice(buf)
	require.NoError(t, err)

	var decoded Line
	_, err = decoded.DecodeFromSlice(buf)
	require.NoError(t, err)

	reencoded := make([]byte, decoded.EncodedSize())
	_, err = decoded.EncodeToSlice(reencoded)
	require.NoError(t, err)

	assert.Equal(t, buf, reencoded)
}
