package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kailas-cloud/folio/internal/db"
)

// mockStore implements the consumer interface for tests and records every query.
type mockStore struct {
	searchFn func(ctx context.Context, q *db.Query) (*db.SearchResult, error)
	queries  []db.Query
}

func (m *mockStore) Search(ctx context.Context, q *db.Query) (*db.SearchResult, error) {
	m.queries = append(m.queries, *q)
	if m.searchFn != nil {
		return m.searchFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	ms := &mockStore{}
	return New(ms, zap.New(core)), ms, logs
}

func hit(t *testing.T, doc any) db.Hit {
	t.Helper()
	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return db.Hit{Document: b}
}

// sceneHits builds n scene hits with ids scene-<from>..scene-<from+n-1>.
func sceneHits(t *testing.T, from, n int) []db.Hit {
	t.Helper()
	hits := make([]db.Hit, n)
	for i := range hits {
		hits[i] = hit(t, sceneRow{
			ID:     fmt.Sprintf("scene-%d", from+i),
			ActID:  "act-1",
			PlayID: "play-hamlet",
			Title:  fmt.Sprintf("Scene %d", from+i),
		})
	}
	return hits
}
