package records

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointSliceRoundTrip(t *testing.T) {
	p := Point{X: 1.5, Y: -2.25}
	buf := make([]byte, p.EncodedSize())
	n, err := p.EncodeToSlice(buf)
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	var got Point
	m, err := got.DecodeFromSlice(buf)
	require.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, p, got)
}

func TestLineWithNestedPointAndSegmentRoundTrip(t *testing.T) {
	l := Line{
		Label:  "diagonal",
		Origin: Point{X: 0, Y: 0},
		Segment: []Point{
			{X: 1, Y: 1},
			{X: 2, Y: 2},
			{X: 3, Y: 3},
		},
	}
	buf := make([]byte, l.EncodedSize())
	n, err := l.EncodeToSlice(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)

	var got Line
	m, err := got.DecodeFromSlice(buf)
	require.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, l, got)
}

func TestLineEmptySegmentRoundTrip(t *testing.T) {
	l := DefaultLine()
	l.Label = "empty"
	buf := make([]byte, l.EncodedSize())
	n, err := l.EncodeToSlice(buf)
	require.NoError(t, err)

	var got Line
	m, err := got.DecodeFromSlice(buf)
	require.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, l, got)
	assert.Empty(t, got.Segment)
}

func TestLineStreamRoundTrip(t *testing.T) {
	l := Line{
		Label:   "via-stream",
		Origin:  Point{X: 9.9, Y: -9.9},
		Segment: []Point{{X: 1, Y: 2}},
	}
	var buf bytes.Buffer
	require.NoError(t, l.Encode(&buf))

	var got Line
	require.NoError(t, got.Decode(&buf))
	assert.Equal(t, l, got)
}
