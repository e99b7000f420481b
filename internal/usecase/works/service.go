package works

import (
	"context"
	"fmt"

	domcat "github.com/kailas-cloud/folio/internal/domain/catalog"
)

// Service lists the works in the catalog.
type Service struct {
	repo Repository
}

// New creates a works service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns (id, title) for the first 250 plays.
func (s *Service) List(ctx context.Context) ([]domcat.Work, error) {
	works, err := s.repo.Works(ctx)
	if err != nil {
		return nil, fmt.Errorf("list works: %w", err)
	}
	return works, nil
}
