package survey

import (
	"context"
	"errors"
)

// Service contains business logic for survey record management.
type Service struct {
	repo *Repository
}

// NewService creates a new survey Service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a new survey record under its client-supplied id.
func (s *Service) Create(ctx context.Context, rec *Record) (string, error) {
	return s.repo.Create(ctx, rec)
}

// GetByID returns a record by its id.
func (s *Service) GetByID(ctx context.Context, id string) (*Record, error) {
	return s.repo.GetByID(ctx, id)
}

// Exists reports whether a record with the given id is present.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	return s.repo.Exists(ctx, id)
}

// List returns records matching the filters.
func (s *Service) List(ctx context.Context, f Filters) ([]*Record, error) {
	return s.repo.List(ctx, f)
}

// AppendPhoto attaches a confirmed photo URL to a record.
func (s *Service) AppendPhoto(ctx context.Context, id, photoURL string) error {
	return s.repo.AppendPhoto(ctx, id, photoURL)
}

// IsNotFound returns true when the error indicates a missing record.
func (s *Service) IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
