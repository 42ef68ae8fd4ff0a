//go:build integration

package dispatchaudit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDispatchAuditAgainstRealPostgres verifies the golang-migrate schema
// and Record path against a throwaway Postgres container.
func TestDispatchAuditAgainstRealPostgres(t *testing.T) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("sdp_dispatchaudit_test"),
		postgres.WithUsername("sdp_test"),
		postgres.WithPassword("sdp_test"),
		testcontainers.WithWaitStrategyAndDeadline(5*time.Minute,
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2),
			wait.ForListeningPort("5432/tcp"),
		),
	)
	require.NoError(t, err)
	defer func() { _ = container.Terminate(ctx) }()

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://sdp_test:sdp_test@%s:%d/sdp_dispatchaudit_test?sslmode=disable",
		host, port.Int())

	store, err := Open(Config{Driver: DriverPostgres, DSN: dsn})
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Record(ctx, 42, 256, outcomeOK))

	replay, err := OpenReplaySource(ctx, dsn)
	require.NoError(t, err)
	defer replay.Close()

	events, err := replay.LastN(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, uint32(42), events[0].TypeTag)
	assert.Equal(t, 256, events[0].PayloadSize)
	assert.Equal(t, outcomeOK, events[0].Outcome)
}
