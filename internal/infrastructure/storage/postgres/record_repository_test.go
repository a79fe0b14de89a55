package postgres

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"sensorlist/internal/domain/record"
	"sensorlist/internal/infrastructure/migration"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgmodule "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/exp/slog"
)

// setupTestDB starts a PostgreSQL container, bootstraps the table and
// returns a repository. Skipped without a container runtime.
func setupTestDB(t *testing.T) (*RecordRepository, *Storage) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping PostgreSQL integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	container, err := pgmodule.Run(ctx,
		"postgres:16-alpine",
		pgmodule.WithDatabase("sensorlist_test"),
		pgmodule.WithUsername("test"),
		pgmodule.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Skipf("skipping: could not start PostgreSQL container: %v", err)
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	migrations, err := filepath.Abs(filepath.Join("..", "..", "..", "..", "migrations", "postgres"))
	require.NoError(t, err)
	require.NoError(t, migration.NewMigration(migrations, dsn, migration.DefaultEngine).Up())

	store, err := New(ctx, Config{DSN: dsn, MaxConns: 5, AcquireTimeout: 3 * time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	schema, err := record.NewSchema(record.DefaultTable, record.DefaultColumns)
	require.NoError(t, err)

	return NewRecordRepository(store, schema, slog.Default()), store
}

func TestPostgres_Lifecycle(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	rec := &record.Record{ID: 1, Attributes: record.Attributes{"name": "temp-sensor"}}
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, *rec, *got)

	err = repo.Create(ctx, &record.Record{ID: 1, Attributes: record.Attributes{"name": "dup"}})
	assert.ErrorIs(t, err, record.ErrConflict)

	upd := &record.Record{ID: 1, Attributes: record.Attributes{"name": "renamed"}}
	require.NoError(t, repo.Update(ctx, upd))
	assert.Equal(t, "renamed", upd.Attributes["name"])

	require.NoError(t, repo.Delete(ctx, 1))

	_, err = repo.Get(ctx, 1)
	assert.ErrorIs(t, err, record.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 1), record.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, upd), record.ErrNotFound)
}

func TestPostgres_ConcurrentDuplicateCreates(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	const workers = 8
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Create(ctx, &record.Record{ID: 7, Attributes: record.Attributes{"name": fmt.Sprintf("w%d", i)}})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, record.ErrConflict)
	}
	assert.Equal(t, 1, succeeded)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPostgres_AcquireTimeout(t *testing.T) {
	_, store := setupTestDB(t)
	ctx := context.Background()

	// Drain the pool, then the next acquire must fail instead of blocking.
	held := make([]interface{ Release() }, 0, 5)
	for i := 0; i < 5; i++ {
		conn, err := store.Pool().Acquire(ctx)
		require.NoError(t, err)
		held = append(held, conn)
	}
	defer func() {
		for _, c := range held {
			c.Release()
		}
	}()

	store.acquireTimeout = 200 * time.Millisecond
	start := time.Now()
	err := store.Ping(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "acquire connection")
	assert.Less(t, time.Since(start), 3*time.Second)
}
