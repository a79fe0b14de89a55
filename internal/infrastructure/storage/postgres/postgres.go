package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config holds PostgreSQL connection and pool settings.
type Config struct {
	// DSN is the PostgreSQL connection string.
	DSN string

	// MaxConns bounds concurrent database operations (default: 5).
	MaxConns int32

	// AcquireTimeout bounds how long an operation waits for a free
	// connection before failing (default: 3s).
	AcquireTimeout time.Duration
}

func (c *Config) defaults() {
	if c.MaxConns <= 0 {
		c.MaxConns = 5
	}
	if c.AcquireTimeout <= 0 {
		c.AcquireTimeout = 3 * time.Second
	}
}

type Storage struct {
	pool           *pgxpool.Pool
	acquireTimeout time.Duration
}

func New(ctx context.Context, cfg Config) (*Storage, error) {
	cfg.defaults()

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	if poolCfg.MinConns > poolCfg.MaxConns {
		poolCfg.MinConns = poolCfg.MaxConns
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.AcquireTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	s := &Storage{pool: pool, acquireTimeout: cfg.AcquireTimeout}
	if err := s.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return s, nil
}

// acquire takes a connection from the pool, giving up after the acquire timeout.
// The caller must Release it.
func (s *Storage) acquire(ctx context.Context) (*pgxpool.Conn, error) {
	actx, cancel := context.WithTimeout(ctx, s.acquireTimeout)
	defer cancel()

	conn, err := s.pool.Acquire(actx)
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
	defer conn.Release()

	return conn.Ping(ctx)
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}
