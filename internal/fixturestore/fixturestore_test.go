package fixturestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGetOrDecodeCachesOnMiss(t *testing.T) {
	s := openTestStore(t)
	key := Key("primitives", []byte{1, 2, 3})

	calls := 0
	decode := func() ([]byte, error) {
		calls++
		return []byte("decoded"), nil
	}

	v1, err := s.GetOrDecode(key, decode)
	require.NoError(t, err)
	assert.Equal(t, []byte("decoded"), v1)
	assert.Equal(t, 1, calls)

	v2, err := s.GetOrDecode(key, decode)
	require.NoError(t, err)
	assert.Equal(t, []byte("decoded"), v2)
	assert.Equal(t, 1, calls, "second call must be served from cache")
}

func TestKeyIsContentAddressed(t *testing.T) {
	k1 := Key("arrays", []byte("a"))
	k2 := Key("arrays", []byte("b"))
	k3 := Key("arrays", []byte("a"))
	assert.NotEqual(t, k1, k2)
	assert.Equal(t, k1, k3)
}

func TestGetMissReturnsFalse(t *testing.T) {
	s := openTestStore(t)
	_, ok, err := s.Get("nested/missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPutThenGet(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Put("optionals/x", []byte{9, 9, 9}))

	got, ok, err := s.Get("optionals/x")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte{9, 9, 9}, got)
}
