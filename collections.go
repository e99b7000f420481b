package folio

import (
	"context"
	"time"
)

// CollectionService inspects search index collections.
type CollectionService struct {
	svc collectionUseCase
	obs *observer
}

// List returns every collection with its schema fields and document count.
// Each collection costs one extra round-trip for its count.
func (s *CollectionService) List(ctx context.Context) (_ []Collection, err error) {
	start := time.Now()
	defer func() { s.obs.observe("collections.list", start, err) }()

	cols, err := s.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Collection, len(cols))
	for i, c := range cols {
		out[i] = fromInternalCollection(c)
	}
	return out, nil
}

// Dump returns the first page (up to 250) of raw hits of a collection
// as indented JSON. Meant for inspection, not for paging through data.
func (s *CollectionService) Dump(ctx context.Context, name string) (_ string, err error) {
	start := time.Now()
	defer func() { s.obs.observe("collections.dump", start, err) }()

	out, err := s.svc.Dump(ctx, name)
	if err != nil {
		return "", err
	}
	return out, nil
}
