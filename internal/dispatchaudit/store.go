// Package dispatchaudit records pkg/message.Dispatcher.Dispatch calls
// (type tag, payload size, decode outcome) to a relational audit table when
// audit mode is enabled in pkg/config. A primary postgres deployment and a
// pure-Go sqlite fallback share one GORM-backed store, so the same audit
// trail is available whether the process runs against a managed database
// or embeds its own.
package dispatchaudit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/marmos91/sdp/internal/metrics"
	"github.com/marmos91/sdp/pkg/message"
	"github.com/marmos91/sdp/pkg/record"
)

// Driver selects the audit store's backend.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Config configures the audit store.
type Config struct {
	Enabled bool
	Driver  Driver
	DSN     string
}

// Store persists DispatchEvent rows through GORM.
type Store struct {
	db *gorm.DB
}

// Open connects to the configured backend and migrates the schema.
func Open(cfg Config) (*Store, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverPostgres:
		if err := runPostgresMigrations(cfg.DSN); err != nil {
			return nil, err
		}
		dialector = postgres.Open(cfg.DSN)
	case DriverSQLite, "":
		dsn := cfg.DSN
		if dsn == "" {
			dsn = "dispatchaudit.db"
		}
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("dispatchaudit: create db dir: %w", err)
			}
		}
		dialector = sqlite.Open(dsn + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	default:
		return nil, fmt.Errorf("dispatchaudit: unsupported driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("dispatchaudit: connect: %w", err)
	}

	// The postgres path schema is already applied via golang-migrate
	// above; AutoMigrate here only covers the sqlite fallback.
	if cfg.Driver != DriverPostgres {
		if err := db.AutoMigrate(AllModels()...); err != nil {
			return nil, fmt.Errorf("dispatchaudit: migrate: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Record inserts one DispatchEvent row.
func (s *Store) Record(ctx context.Context, typeTag uint32, payloadSize int, outcome string) error {
	event := DispatchEvent{
		TypeTag:     typeTag,
		PayloadSize: payloadSize,
		Outcome:     outcome,
		CreatedAt:   time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("dispatchaudit: record: %w", err)
	}
	return nil
}

const (
	outcomeOK      = "ok"
	outcomeFailure = "error"
)

// AuditingDispatcher wraps a message.Dispatcher and records each Dispatch
// call whose envelope header decodes to the audit store. A buffer too short
// or malformed to yield a type tag is still dispatched but not recorded.
type AuditingDispatcher struct {
	*message.Dispatcher
	store   *Store
	metrics metrics.DispatchMetrics
}

// NewAuditingDispatcher wraps d so Dispatch calls are recorded to store.
func NewAuditingDispatcher(d *message.Dispatcher, store *Store) *AuditingDispatcher {
	return &AuditingDispatcher{Dispatcher: d, store: store}
}

// WithMetrics attaches a DispatchMetrics sink; subsequent Dispatch calls
// report dispatch counts through it. Passing nil disables instrumentation.
func (a *AuditingDispatcher) WithMetrics(m metrics.DispatchMetrics) *AuditingDispatcher {
	a.metrics = m
	return a
}

// Dispatch delegates to the wrapped dispatcher and records the outcome
// when the envelope header can be decoded.
func (a *AuditingDispatcher) Dispatch(buf []byte) (record.Decoder, error) {
	start := time.Now()
	rec, err := a.Dispatcher.Dispatch(buf)

	outcome := outcomeOK
	if err != nil {
		outcome = outcomeFailure
	}

	env, _, envErr := message.DecodeEnvelope(buf)
	if envErr == nil {
		if a.metrics != nil {
			a.metrics.RecordDispatch(env.TypeTag, outcome)
			a.metrics.ObserveDecodeDuration(fmt.Sprintf("tag-%d", env.TypeTag), time.Since(start))
		}
		if auditErr := a.store.Record(context.Background(), env.TypeTag, int(env.PayloadLength), outcome); auditErr != nil {
			if err == nil {
				return rec, fmt.Errorf("dispatch succeeded but audit failed: %w", auditErr)
			}
		}
	}

	return rec, err
}
