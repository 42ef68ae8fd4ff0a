package dispatchaudit

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "audit.db")
	s, err := Open(Config{Driver: DriverSQLite, DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordInsertsRow(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Record(context.Background(), 7, 128, outcomeOK))

	var events []DispatchEvent
	require.NoError(t, s.db.Find(&events).Error)
	require.Len(t, events, 1)
	assert.Equal(t, uint32(7), events[0].TypeTag)
	assert.Equal(t, 128, events[0].PayloadSize)
	assert.Equal(t, outcomeOK, events[0].Outcome)
}

func TestOpenDefaultsToSQLite(t *testing.T) {
	s, err := Open(Config{DSN: filepath.Join(t.TempDir(), "default.db")})
	require.NoError(t, err)
	defer s.Close()
	assert.NoError(t, s.Record(context.Background(), 1, 1, outcomeFailure))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(Config{Driver: "oracle"})
	assert.Error(t, err)
}
