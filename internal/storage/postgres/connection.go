package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/rozgar-darpan/go-mgnrega-backend/config"
)

func NewConnection(cfg *config.DatabaseConfig) (*sql.DB, error) {
	dsn := DSN(cfg)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

// EnsureSchema creates the snapshot table when it does not exist yet. The
// schema is small enough that a migration tool would be overkill.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS district_performance (
			id UUID PRIMARY KEY,
			district_code TEXT NOT NULL UNIQUE,
			district_name TEXT NOT NULL,
			state_name TEXT NOT NULL,
			fin_year TEXT NOT NULL,
			total_workers BIGINT NOT NULL DEFAULT 0,
			active_workers BIGINT NOT NULL DEFAULT 0,
			wages_paid DOUBLE PRECISION NOT NULL DEFAULT 0,
			work_days_generated BIGINT NOT NULL DEFAULT 0,
			avg_employment_days DOUBLE PRECISION NOT NULL DEFAULT 0,
			avg_wage_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
			women_persondays BIGINT NOT NULL DEFAULT 0,
			sc_persondays BIGINT NOT NULL DEFAULT 0,
			st_persondays BIGINT NOT NULL DEFAULT 0,
			payments_within_15_days_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
			captured_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
