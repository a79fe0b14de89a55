// Package sqlite is the database/sql + go-sqlite3 record store, selected
// by a sqlite3:// DSN. It mirrors the postgres adapter statement for statement.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Scheme is the DSN prefix shared with golang-migrate's sqlite3 driver.
const Scheme = "sqlite3://"

type Config struct {
	// DSN is sqlite3://<path>
	DSN            string
	MaxConns       int
	AcquireTimeout time.Duration
}

type Storage struct {
	db             *sql.DB
	acquireTimeout time.Duration
}

// Path strips the scheme from a sqlite3:// DSN.
func Path(dsn string) string {
	return strings.TrimPrefix(dsn, Scheme)
}

func New(ctx context.Context, cfg Config) (*Storage, error) {
	if cfg.MaxConns <= 0 {
		cfg.MaxConns = 5
	}
	if cfg.AcquireTimeout <= 0 {
		cfg.AcquireTimeout = 3 * time.Second
	}

	path := Path(cfg.DSN)
	if path == "" {
		return nil, fmt.Errorf("empty sqlite path in %q", cfg.DSN)
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxConns)

	s := &Storage{db: db, acquireTimeout: cfg.AcquireTimeout}
	if err := s.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return s, nil
}

// acquire reserves one pooled connection, bounded by the acquire timeout.
func (s *Storage) acquire(ctx context.Context) (*sql.Conn, error) {
	actx, cancel := context.WithTimeout(ctx, s.acquireTimeout)
	defer cancel()

	conn, err := s.db.Conn(actx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	return conn, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	conn, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return conn.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) DB() *sql.DB {
	return s.db
}
