package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Group-A-SPU-Advance-database-2024/SHOPEASE/pkg/retry"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

const pingDelay = 200 * time.Millisecond

type sqldb interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PingContext(ctx context.Context) error
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLDB is a bounded pool of sessions to the relational store,
// shared by the repositories for the process lifetime.
type SQLDB struct {
	*sql.DB
}

func NewSQLDB(ctx context.Context, dsn string, maxOpenConns int) (SQLDB, error) {
	const op = "SQLDB"
	log := slog.With("op", op)

	connConfig, err := pgx.ParseConfig(dsn)
	if err != nil {
		return SQLDB{}, fmt.Errorf("%s: invalid dsn: %w", op, err)
	}
	connStr := stdlib.RegisterConnConfig(connConfig)
	db, _ := sql.Open("pgx", connStr)
	db.SetMaxOpenConns(maxOpenConns)

	s := SQLDB{db}
	if err := s.ping(ctx); err != nil {
		return SQLDB{}, fmt.Errorf("%s: database is unavailable: %w", op, err)
	}
	log.Info("database is available")
	return s, nil
}

func (s SQLDB) ping(ctx context.Context) error {
	c := retry.Config{
		MaxAttempts: 5,
		Backoff:     retry.ExponentialBackoff(pingDelay),
	}
	return retry.Do(ctx, c, func() error {
		return s.PingContext(ctx)
	})
}

func (s SQLDB) Close() {
	const op = "SQLDB.Close"
	log := slog.With("op", op)

	log.Info("closing sql database...")

	if err := s.DB.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("sql database is closed")
}
