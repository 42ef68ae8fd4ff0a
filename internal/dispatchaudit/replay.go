package dispatchaudit

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrEmptyReplayMix is returned when a replay query matches no rows that
// resolve to a known record, leaving nothing to replay.
var ErrEmptyReplayMix = errors.New("dispatchaudit: no replayable events found")

// ReplayedEvent is one row from the bulk replay query, independent of the
// GORM model so the ORM layer stays out of the hot read path.
type ReplayedEvent struct {
	TypeTag     uint32 `db:"type_tag"`
	PayloadSize int    `db:"payload_size"`
	Outcome     string `db:"outcome"`
}

// ReplaySource issues the bulk "last N dispatch events" query directly
// through pgx, bypassing GORM for a query `sdpcli profile` runs often
// enough that ORM scan overhead would show up in the profile.
type ReplaySource struct {
	pool *pgxpool.Pool
}

// OpenReplaySource connects to dsn using a pgx connection pool.
func OpenReplaySource(ctx context.Context, dsn string) (*ReplaySource, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("dispatchaudit: open replay pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("dispatchaudit: ping replay pool: %w", err)
	}
	return &ReplaySource{pool: pool}, nil
}

// Close releases the pool.
func (r *ReplaySource) Close() { r.pool.Close() }

// LastN returns the n most recently recorded dispatch events, most recent
// first, for reconstructing a realistic message mix to replay.
func (r *ReplaySource) LastN(ctx context.Context, n int) ([]ReplayedEvent, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT type_tag, payload_size, outcome
		 FROM dispatch_events
		 ORDER BY created_at DESC
		 LIMIT $1`,
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("dispatchaudit: query last %d events: %w", n, err)
	}
	defer rows.Close()

	events, err := pgx.CollectRows(rows, pgx.RowToStructByName[ReplayedEvent])
	if err != nil {
		return nil, fmt.Errorf("dispatchaudit: scan replay rows: %w", err)
	}
	return events, nil
}
