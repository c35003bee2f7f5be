package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"logistics/migrations"
)

const migrationsDialect = "postgres"

// Migrator применяет встроенные в бинарь goose-миграции.
type Migrator struct {
	db *sql.DB
}

func NewMigrator(pool *pgxpool.Pool) (*Migrator, error) {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(migrationsDialect); err != nil {
		return nil, fmt.Errorf("goose dialect: %w", err)
	}

	return &Migrator{
		db: stdlib.OpenDBFromPool(pool),
	}, nil
}

func (m *Migrator) Up(ctx context.Context) error {
	return goose.UpContext(ctx, m.db, ".")
}

func (m *Migrator) Down(ctx context.Context) error {
	return goose.DownContext(ctx, m.db, ".")
}

func (m *Migrator) Status(ctx context.Context) error {
	return goose.StatusContext(ctx, m.db, ".")
}

func (m *Migrator) Version(ctx context.Context) (int64, error) {
	return goose.GetDBVersionContext(ctx, m.db)
}

func (m *Migrator) Close() error {
	return m.db.Close()
}
