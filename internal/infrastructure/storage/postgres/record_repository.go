package postgres

import (
	"context"
	"errors"
	"fmt"

	"sensorlist/internal/domain/record"
	"sensorlist/internal/infrastructure/storage/sqlstmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/exp/slog"
)

// uniqueViolation is SQLSTATE 23505.
const uniqueViolation = "23505"

type RecordRepository struct {
	storage *Storage
	stmts   sqlstmt.Statements
	log     *slog.Logger
}

var _ record.Repository = (*RecordRepository)(nil)

func NewRecordRepository(storage *Storage, schema record.Schema, log *slog.Logger) *RecordRepository {
	return &RecordRepository{
		storage: storage,
		stmts:   sqlstmt.Build(schema, sqlstmt.Dollar),
		log:     log.With("component", "record_repository", "driver", "postgres"),
	}
}

func (r *RecordRepository) List(ctx context.Context) ([]record.Record, error) {
	conn, err := r.storage.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, r.stmts.List)
	if err != nil {
		r.log.Error("failed to list records", "error", err)
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	records := make([]record.Record, 0)
	for rows.Next() {
		rec, err := r.stmts.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return records, nil
}

func (r *RecordRepository) Get(ctx context.Context, id int) (*record.Record, error) {
	conn, err := r.storage.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rec, err := r.stmts.Scan(conn.QueryRow(ctx, r.stmts.Get, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, record.ErrNotFound
		}
		r.log.Error("failed to get record", "record_id", id, "error", err)
		return nil, fmt.Errorf("get record: %w", err)
	}

	return &rec, nil
}

func (r *RecordRepository) Create(ctx context.Context, rec *record.Record) error {
	conn, err := r.storage.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, r.stmts.Insert, r.stmts.InsertArgs(rec)...); err != nil {
		if isUniqueViolation(err) {
			return record.ErrConflict
		}
		r.log.Error("failed to create record", "record_id", rec.ID, "error", err)
		return fmt.Errorf("create record: %w", err)
	}

	return nil
}

func (r *RecordRepository) Update(ctx context.Context, rec *record.Record) error {
	conn, err := r.storage.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	stored, err := r.stmts.Scan(conn.QueryRow(ctx, r.stmts.Update, r.stmts.UpdateArgs(rec)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return record.ErrNotFound
		}
		r.log.Error("failed to update record", "record_id", rec.ID, "error", err)
		return fmt.Errorf("update record: %w", err)
	}

	*rec = stored
	return nil
}

func (r *RecordRepository) Delete(ctx context.Context, id int) error {
	conn, err := r.storage.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	result, err := conn.Exec(ctx, r.stmts.Delete, id)
	if err != nil {
		r.log.Error("failed to delete record", "record_id", id, "error", err)
		return fmt.Errorf("delete record: %w", err)
	}

	if result.RowsAffected() == 0 {
		return record.ErrNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
