package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/centralring-backend/migrations"
)

// Migrator applies the embedded goose migrations. goose needs a *sql.DB,
// so it opens its own connection through the pgx stdlib driver.
type Migrator struct {
	*goose.Provider
	db *sql.DB
}

// NewMigrator connects to dsn and prepares a goose provider over the
// embedded migrations. Close releases the connection.
func NewMigrator(dsn string) (*Migrator, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open migration connection: %w", err)
	}

	// NewProvider handles $$-delimited bodies correctly, unlike the legacy
	// goose.Up which splits on semicolons.
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("goose new provider: %w", err)
	}

	return &Migrator{Provider: provider, db: db}, nil
}

// Close closes the underlying connection.
func (m *Migrator) Close() error {
	return m.db.Close()
}
