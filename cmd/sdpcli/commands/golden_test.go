package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCanonicalMatchesGoldenFixture verifies every entry registered in
// canonical() round-trips byte-for-byte through its testdata fixture, per
// the contract documented on canonical().
func TestCanonicalMatchesGoldenFixture(t *testing.T) {
	for _, name := range recordNames {
		t.Run(name, func(t *testing.T) {
			rec, err := canonical(name)
			require.NoError(t, err)

			want, err := os.ReadFile(filepath.Join("..", "..", "..", "testdata", name+".sdpb"))
			require.NoError(t, err)

			got := make([]byte, rec.EncodedSize())
			n, err := rec.EncodeToSlice(got)
			require.NoError(t, err)
			assert.Equal(t, len(got), n)
			assert.Equal(t, want, got)

			decoded, err := canonical(name)
			require.NoError(t, err)
			m, err := decoded.DecodeFromSlice(want)
			require.NoError(t, err)
			assert.Equal(t, len(want), m)
			assert.Equal(t, rec, decoded)
		})
	}
}
