package dispatchaudit

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver

	"github.com/marmos91/sdp/internal/dispatchaudit/migrations"
	"github.com/marmos91/sdp/internal/logger"
)

// runPostgresMigrations applies every pending migration in the migrations
// package to the postgres database named by dsn. Used instead of GORM's
// AutoMigrate on the primary deployment path.
func runPostgresMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("dispatchaudit: open migration connection: %w", err)
	}
	defer db.Close()

	driver, err := migratepostgres.WithInstance(db, &migratepostgres.Config{
		MigrationsTable: "dispatch_audit_schema_migrations",
		DatabaseName:    "dispatchaudit",
	})
	if err != nil {
		return fmt.Errorf("dispatchaudit: create postgres driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("dispatchaudit: create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", driver)
	if err != nil {
		return fmt.Errorf("dispatchaudit: create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("dispatchaudit: apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("dispatchaudit: read migration version: %w", err)
	}
	logger.Info("dispatch audit schema migrated", "version", version, "dirty", dirty)
	return nil
}
