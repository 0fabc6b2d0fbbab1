package adapter

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"tourbook/internal/infrastructure/metrics"
)

// Builder is the shared statement builder for Postgres placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// SQLAdapter executes squirrel-built queries against the pool and reports
// per-operation timings to the metrics registry.
type SQLAdapter struct {
	db *sqlx.DB
}

func NewSQLAdapter(db *sqlx.DB) *SQLAdapter {
	return &SQLAdapter{db: db}
}

// Get runs a single-row query into dest. sql.ErrNoRows comes back
// unchanged so callers can translate absence themselves.
func (a *SQLAdapter) Get(ctx context.Context, dest interface{}, qb sq.Sqlizer, op string) error {
	query, args, err := qb.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query for %s: %w", op, err)
	}

	start := time.Now()
	err = a.db.GetContext(ctx, dest, query, args...)
	metrics.ObserveDBRequest(op, time.Since(start))
	return err
}

// Select runs a multi-row query into dest.
func (a *SQLAdapter) Select(ctx context.Context, dest interface{}, qb sq.Sqlizer, op string) error {
	query, args, err := qb.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query for %s: %w", op, err)
	}

	start := time.Now()
	err = a.db.SelectContext(ctx, dest, query, args...)
	metrics.ObserveDBRequest(op, time.Since(start))
	return err
}

// Exec runs a statement that returns no rows.
func (a *SQLAdapter) Exec(ctx context.Context, qb sq.Sqlizer, op string) (sql.Result, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query for %s: %w", op, err)
	}

	start := time.Now()
	res, err := a.db.ExecContext(ctx, query, args...)
	metrics.ObserveDBRequest(op, time.Since(start))
	return res, err
}
