package record

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) (ListResponse, error)
	Find(ctx context.Context, id int) (*Record, error)
	Create(ctx context.Context, rec Record) (*Record, error)
	Update(ctx context.Context, id int, attrs Attributes) (*Record, error)
	Delete(ctx context.Context, id int) error
}

// Service defines the business logic for record operations
type Service struct {
	repo   Repository
	schema Schema
	log    *slog.Logger
}

// NewService creates a new record service
func NewService(repo Repository, schema Schema, log *slog.Logger) Servicer {
	return &Service{
		repo:   repo,
		schema: schema,
		log:    log.With("component", "record_service"),
	}
}

// List returns every record in the table
func (s *Service) List(ctx context.Context) (ListResponse, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list records", "error", err)
		return ListResponse{}, fmt.Errorf("list records: %w", err)
	}
	if records == nil {
		records = []Record{}
	}

	return ListResponse{
		Records: records,
		Total:   len(records),
	}, nil
}

// Find returns a specific record by ID
func (s *Service) Find(ctx context.Context, id int) (*Record, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find record", "record_id", id, "error", err)
		return nil, fmt.Errorf("find record: %w", err)
	}
	return rec, nil
}

// Create inserts rec as supplied; the result is the same record
func (s *Service) Create(ctx context.Context, rec Record) (*Record, error) {
	if err := s.schema.Validate(rec); err != nil {
		return nil, err
	}

	created := Record{ID: rec.ID, Attributes: rec.Attributes.Clone()}
	if err := s.repo.Create(ctx, &created); err != nil {
		if errors.Is(err, ErrConflict) {
			s.log.Debug("duplicate record id", "record_id", rec.ID)
			return nil, ErrConflict
		}
		s.log.Error("failed to create record", "record_id", rec.ID, "error", err)
		return nil, fmt.Errorf("create record: %w", err)
	}

	s.log.Info("record created successfully", "record_id", created.ID)
	return &created, nil
}

// Update replaces every attribute of the record and returns the row as stored
func (s *Service) Update(ctx context.Context, id int, attrs Attributes) (*Record, error) {
	rec := Record{ID: id, Attributes: attrs.Clone()}
	if err := s.schema.Validate(rec); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &rec); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to update record", "record_id", id, "error", err)
		return nil, fmt.Errorf("update record: %w", err)
	}

	s.log.Info("record updated successfully", "record_id", id)
	return &rec, nil
}

// Delete permanently deletes a record
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete record", "record_id", id, "error", err)
		return fmt.Errorf("delete record: %w", err)
	}

	s.log.Info("record deleted successfully", "record_id", id)
	return nil
}
