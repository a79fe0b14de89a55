package record

import (
	"context"
)

// Repository is implemented by the storage adapters. Implementations own
// all SQL text and return ErrNotFound / ErrConflict for the matching cases.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	Get(ctx context.Context, id int) (*Record, error)
	Create(ctx context.Context, rec *Record) error
	// Update overwrites every attribute of rec.ID and replaces rec with the stored row.
	Update(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, id int) error
}
