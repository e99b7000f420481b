package collection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kailas-cloud/folio/internal/db"
	"github.com/kailas-cloud/folio/internal/domain"
	domcol "github.com/kailas-cloud/folio/internal/domain/collection"
	"github.com/kailas-cloud/folio/internal/domain/collection/field"
	"github.com/kailas-cloud/folio/internal/domain/search/page"
	"github.com/kailas-cloud/folio/internal/domain/search/request"
)

// store is the consumer interface for collection metadata (ISP).
type store interface {
	ListCollections(ctx context.Context) ([]db.CollectionSchema, error)
	GetCollection(ctx context.Context, name string) (db.CollectionSchema, error)
	Search(ctx context.Context, q *db.Query) (*db.SearchResult, error)
}

// Repo implements usecase/collection.Repository.
type Repo struct {
	store store
}

// New creates a collection repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// List returns every collection with its schema fields and document count.
// Counts come from a second, per-collection lookup; calls are sequential.
func (r *Repo) List(ctx context.Context) ([]domcol.Collection, error) {
	schemas, err := r.store.ListCollections(ctx)
	if err != nil {
		return nil, upstream(err)
	}

	cols := make([]domcol.Collection, 0, len(schemas))
	for _, s := range schemas {
		info, err := r.store.GetCollection(ctx, s.Name)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", s.Name, upstream(err))
		}
		cols = append(cols, collectionFromSchema(s, info.NumDocuments))
	}
	return cols, nil
}

// Sample returns the raw hits of the first page (up to 250 documents) of a collection,
// each hit encoded as a JSON object with its document, highlights and text match score.
func (r *Repo) Sample(ctx context.Context, name string) ([]json.RawMessage, error) {
	res, err := r.store.Search(ctx, &db.Query{
		Collection: name,
		Q:          request.MatchAll,
		Page:       1,
		PerPage:    page.MaxSize,
	})
	if err != nil {
		return nil, upstream(err)
	}

	hits := make([]json.RawMessage, 0, len(res.Hits))
	for i, h := range res.Hits {
		b, err := json.Marshal(h)
		if err != nil {
			return nil, fmt.Errorf("%w: encode hit %d: %w", domain.ErrUpstream, i, err)
		}
		hits = append(hits, b)
	}
	return hits, nil
}

func collectionFromSchema(s db.CollectionSchema, numDocs int64) domcol.Collection {
	fields := make([]field.Field, len(s.Fields))
	for i, f := range s.Fields {
		fields[i] = field.Reconstruct(f.Name, field.Type(f.Type))
	}
	return domcol.Reconstruct(s.Name, fields, numDocs)
}

func upstream(err error) error {
	if errors.Is(err, db.ErrCollectionNotFound) {
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	}
	return fmt.Errorf("%w: %w", domain.ErrUpstream, err)
}
