package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sensorlist/internal/domain/record"
	"sensorlist/internal/infrastructure/storage/postgres"
	"sensorlist/internal/infrastructure/storage/sqlite"

	"golang.org/x/exp/slog"
)

// Storage is an open database with the record repository bound to it.
type Storage interface {
	Records() record.Repository
	Ping(ctx context.Context) error
	Close() error
}

type Config struct {
	DSN            string
	MaxConns       int
	AcquireTimeout time.Duration
}

// Open picks the adapter from the DSN scheme: postgres:// or postgresql://
// for PostgreSQL, sqlite3:// for SQLite.
func Open(ctx context.Context, cfg Config, schema record.Schema, log *slog.Logger) (Storage, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		s, err := postgres.New(ctx, postgres.Config{
			DSN:            cfg.DSN,
			MaxConns:       int32(cfg.MaxConns),
			AcquireTimeout: cfg.AcquireTimeout,
		})
		if err != nil {
			return nil, err
		}
		return &bound{db: s, records: postgres.NewRecordRepository(s, schema, log)}, nil

	case strings.HasPrefix(cfg.DSN, sqlite.Scheme):
		s, err := sqlite.New(ctx, sqlite.Config{
			DSN:            cfg.DSN,
			MaxConns:       cfg.MaxConns,
			AcquireTimeout: cfg.AcquireTimeout,
		})
		if err != nil {
			return nil, err
		}
		return &bound{db: s, records: sqlite.NewRecordRepository(s, schema, log)}, nil
	}

	return nil, fmt.Errorf("unsupported database uri scheme: %q", scheme(cfg.DSN))
}

type database interface {
	Ping(ctx context.Context) error
	Close() error
}

type bound struct {
	db      database
	records record.Repository
}

func (b *bound) Records() record.Repository     { return b.records }
func (b *bound) Ping(ctx context.Context) error { return b.db.Ping(ctx) }
func (b *bound) Close() error                   { return b.db.Close() }

func scheme(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i]
	}
	return dsn
}
