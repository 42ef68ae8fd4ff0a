package wire

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dehex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// TestGoldenU32 covers concrete scenario 1: a u32 value 0x12345678 encodes
// to its little-endian bytes.
func TestGoldenU32(t *testing.T) {
	buf := make([]byte, 4)
	n, err := EncodeU32(buf, 0, 0x12345678)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, dehex(t, "78563412"), buf)
}

// TestGoldenString covers concrete scenario 2: "Hi" encodes to a 4-byte
// length prefix followed by its ASCII bytes.
func TestGoldenString(t *testing.T) {
	buf := make([]byte, 6)
	n, err := EncodeString(buf, 0, "Hi")
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, dehex(t, "0200000048" + "69"), buf)
}

// TestGoldenBoolTrueThenFalse covers concrete scenario 5.
func TestGoldenBoolTrueThenFalse(t *testing.T) {
	buf := make([]byte, 2)
	_, err := EncodeBool(buf, 0, true)
	require.NoError(t, err)
	_, err = EncodeBool(buf, 1, false)
	require.NoError(t, err)
	assert.Equal(t, dehex(t, "0100"), buf)
}

// TestGoldenU32Array covers concrete scenario 6: [100, 200, 300].
func TestGoldenU32Array(t *testing.T) {
	vals := []uint32{100, 200, 300}
	buf := make([]byte, 4+4*len(vals))
	n, err := EncodeU32Array(buf, 0, vals)
	require.NoError(t, err)
	assert.Equal(t, 16, n)
	assert.Equal(t, dehex(t, "03000000"+"64000000"+"c8000000"+"2c010000"), buf)
}
