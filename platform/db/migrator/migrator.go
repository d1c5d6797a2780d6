package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/pressly/goose/v3"
)

// Migrator applies the SQL files of one directory with goose.
type Migrator struct {
	db       *sql.DB
	provider *goose.Provider
}

func NewMigrator(db *sql.DB, migrationsDir string) (*Migrator, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(migrationsDir))
	if err != nil {
		return nil, fmt.Errorf("goose provider for %q: %w", migrationsDir, err)
	}

	return &Migrator{db: db, provider: provider}, nil
}

// Up applies every pending migration and returns the versions it ran.
func (m *Migrator) Up(ctx context.Context) ([]int64, error) {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return nil, err
	}

	applied := make([]int64, 0, len(results))
	for _, r := range results {
		applied = append(applied, r.Source.Version)
	}
	return applied, nil
}

func (m *Migrator) Close() error {
	return m.db.Close()
}
