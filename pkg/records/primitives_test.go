package records

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitivesSliceRoundTrip(t *testing.T) {
	p := Primitives{
		U8: 1, U16: 2, U32: 3, U64: 4,
		I8: -1, I16: -2, I32: -3, I64: -4,
		F32: 1.5, F64: math.Pi, B: true, Str: "primitives",
	}
	buf := make([]byte, p.EncodedSize())
	n, err := p.EncodeToSlice(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)

	var got Primitives
	m, err := got.DecodeFromSlice(buf)
	require.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, p, got)
}

func TestPrimitivesStreamRoundTrip(t *testing.T) {
	p := Primitives{U8: 7, U64: math.MaxUint64, I64: math.MinInt64, B: false, Str: "stream"}
	var buf bytes.Buffer
	require.NoError(t, p.Encode(&buf))

	var got Primitives
	require.NoError(t, got.Decode(&buf))
	assert.Equal(t, p, got)
}

func TestPrimitivesDefaultIsZeroValue(t *testing.T) {
	assert.Equal(t, Primitives{}, DefaultPrimitives())
}
