package wire

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "Hi", "hello, 世界", strings.Repeat("x", 1000)} {
		buf := make([]byte, 4+len(s))
		n, err := EncodeString(buf, 0, s)
		require.NoError(t, err)
		assert.Equal(t, len(buf), n)

		got, m, err := DecodeString(buf, 0)
		require.NoError(t, err)
		assert.Equal(t, n, m)
		assert.Equal(t, s, got)
	}
}

func TestStringInvalidUTF8(t *testing.T) {
	buf := make([]byte, 5)
	_, err := EncodeU32(buf, 0, 1)
	require.NoError(t, err)
	buf[4] = 0xFF // not valid UTF-8 on its own

	_, _, err = DecodeString(buf, 0)
	var invalid *InvalidUTF8
	require.ErrorAs(t, err, &invalid)
}

func TestBytesRoundTrip(t *testing.T) {
	data := []byte{0, 1, 2, 255, 254}
	buf := make([]byte, 4+len(data))
	n, err := EncodeBytes(buf, 0, data)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)

	got, m, err := DecodeBytes(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, data, got)
}

func TestDecodeStringDoSGuard(t *testing.T) {
	buf := make([]byte, 4)
	_, err := EncodeU32(buf, 0, 0xFFFFFFFF)
	require.NoError(t, err)

	_, _, err = DecodeString(buf, 0)
	var tooLarge *ArrayTooLarge
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, uint32(MaxArraySize), tooLarge.Max)
}

func TestDecodeBytesDoSGuardNeverAllocates(t *testing.T) {
	buf := make([]byte, 4)
	_, err := EncodeU32(buf, 0, 0xFFFFFFFF)
	require.NoError(t, err)

	got, n, err := DecodeBytes(buf, 0)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 0, n)
}

func TestEncodeStringBufferTooSmall(t *testing.T) {
	buf := make([]byte, 3)
	_, err := EncodeString(buf, 0, "Hi")
	var tooSmall *BufferTooSmall
	require.ErrorAs(t, err, &tooSmall)
}
