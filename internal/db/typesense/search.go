package typesense

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/typesense/typesense-go/v3/typesense/api"
	"github.com/typesense/typesense-go/v3/typesense/api/pointer"

	"github.com/kailas-cloud/folio/internal/db"
)

// Search runs a document search against q.Collection.
func (s *Store) Search(ctx context.Context, q *db.Query) (res *db.SearchResult, err error) {
	start := time.Now()
	defer func() { observe(db.OpSearch, q.Collection, start, err) }()

	params := searchParams(q)
	raw, err := s.client.Collection(q.Collection).Documents().Search(ctx, params)
	if err != nil {
		return nil, wrapErr(db.OpSearch, q.Collection, err)
	}

	res, err = searchResultFromAPI(raw)
	if err != nil {
		return nil, &db.Error{Op: db.OpSearch, Collection: q.Collection, Err: err}
	}
	return res, nil
}

func searchParams(q *db.Query) *api.SearchCollectionParams {
	params := &api.SearchCollectionParams{
		Q: pointer.String(q.Q),
	}
	if q.QueryBy != "" {
		params.QueryBy = pointer.String(q.QueryBy)
	}
	if !q.Filter.IsEmpty() {
		params.FilterBy = pointer.String(filterBy(q.Filter))
	}
	if q.Page > 0 {
		params.Page = pointer.Int(q.Page)
	}
	if q.PerPage > 0 {
		params.PerPage = pointer.Int(q.PerPage)
	}
	return params
}

func searchResultFromAPI(raw *api.SearchResult) (*db.SearchResult, error) {
	res := &db.SearchResult{}
	if raw == nil {
		return res, nil
	}
	if raw.Found != nil {
		res.Found = *raw.Found
	}
	if raw.Page != nil {
		res.Page = *raw.Page
	}
	if raw.Hits == nil {
		return res, nil
	}

	res.Hits = make([]db.Hit, 0, len(*raw.Hits))
	for i, h := range *raw.Hits {
		hit := db.Hit{Document: json.RawMessage("{}")}
		if h.Document != nil {
			doc, err := json.Marshal(*h.Document)
			if err != nil {
				return nil, fmt.Errorf("marshal hit %d: %w", i, err)
			}
			hit.Document = doc
		}
		if h.Highlights != nil {
			hl, err := json.Marshal(*h.Highlights)
			if err != nil {
				return nil, fmt.Errorf("marshal highlights %d: %w", i, err)
			}
			hit.Highlights = hl
		}
		if h.TextMatch != nil {
			hit.TextMatch = *h.TextMatch
		}
		res.Hits = append(res.Hits, hit)
	}
	return res, nil
}
