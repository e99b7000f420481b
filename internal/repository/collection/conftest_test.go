package collection

import (
	"context"
	"testing"

	"github.com/kailas-cloud/folio/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	listFn   func(ctx context.Context) ([]db.CollectionSchema, error)
	getFn    func(ctx context.Context, name string) (db.CollectionSchema, error)
	searchFn func(ctx context.Context, q *db.Query) (*db.SearchResult, error)
	gets     []string
}

func (m *mockStore) ListCollections(ctx context.Context) ([]db.CollectionSchema, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockStore) GetCollection(ctx context.Context, name string) (db.CollectionSchema, error) {
	m.gets = append(m.gets, name)
	if m.getFn != nil {
		return m.getFn(ctx, name)
	}
	return db.CollectionSchema{Name: name}, nil
}

func (m *mockStore) Search(ctx context.Context, q *db.Query) (*db.SearchResult, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}
