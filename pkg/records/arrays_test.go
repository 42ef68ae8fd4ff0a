package records

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArraysSliceRoundTrip(t *testing.T) {
	a := Arrays{
		U32s:  []uint32{1, 2, 3},
		U64s:  []uint64{4, 5},
		F64s:  []float64{1.1, 2.2},
		Bytes: []byte{0xAA, 0xBB},
		Strs:  []string{"a", "bb", ""},
	}
	buf := make([]byte, a.EncodedSize())
	n, err := a.EncodeToSlice(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)

	var got Arrays
	m, err := got.DecodeFromSlice(buf)
	require.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, a, got)
}

// TestArraysAllEmptyIs20Bytes exercises the golden scenario of five
// all-empty arrays: one 4-byte zero count per field.
func TestArraysAllEmptyIs20Bytes(t *testing.T) {
	a := DefaultArrays()
	assert.Equal(t, 20, a.EncodedSize())

	buf := make([]byte, a.EncodedSize())
	n, err := a.EncodeToSlice(buf)
	require.NoError(t, err)
	assert.Equal(t, 20, n)
	for _, b := range buf {
		assert.Equal(t, byte(0), b)
	}

	var got Arrays
	m, err := got.DecodeFromSlice(buf)
	require.NoError(t, err)
	assert.Equal(t, 20, m)
	assert.Empty(t, got.U32s)
	assert.Empty(t, got.U64s)
	assert.Empty(t, got.F64s)
	assert.Empty(t, got.Bytes)
	assert.Empty(t, got.Strs)
}

func TestArraysStreamRoundTrip(t *testing.T) {
	a := Arrays{U32s: []uint32{9, 8, 7}, Bytes: []byte{1, 2, 3, 4}}
	var buf bytes.Buffer
	require.NoError(t, a.Encode(&buf))

	var got Arrays
	require.NoError(t, got.Decode(&buf))
	assert.Equal(t, a, got)
}
