package collection

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/folio/internal/domain"
	domcol "github.com/kailas-cloud/folio/internal/domain/collection"
)

// Service exposes read-only collection introspection.
type Service struct {
	repo Repository
}

// New creates a collection service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every collection with its fields and document count.
func (s *Service) List(ctx context.Context) ([]domcol.Collection, error) {
	cols, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return cols, nil
}

// Dump returns the first page of hits of a collection as indented JSON.
func (s *Service) Dump(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("dump collection: %w: name is required", domain.ErrInvalidArgument)
	}

	hits, err := s.repo.Sample(ctx, name)
	if err != nil {
		return "", fmt.Errorf("dump collection %s: %w", name, err)
	}
	if hits == nil {
		hits = []json.RawMessage{}
	}

	out, err := json.MarshalIndent(hits, "", "  ")
	if err != nil {
		return "", fmt.Errorf("dump collection %s: encode: %w", name, err)
	}
	return string(out), nil
}
