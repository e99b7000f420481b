package typesense

import (
	"context"
	"time"

	"github.com/typesense/typesense-go/v3/typesense/api"

	"github.com/kailas-cloud/folio/internal/db"
)

// ListCollections returns all collection schemas.
func (s *Store) ListCollections(ctx context.Context) (cols []db.CollectionSchema, err error) {
	start := time.Now()
	defer func() { observe(db.OpListCollections, "", start, err) }()

	raw, err := s.client.Collections().Retrieve(ctx)
	if err != nil {
		return nil, wrapErr(db.OpListCollections, "", err)
	}

	cols = make([]db.CollectionSchema, 0, len(raw))
	for _, c := range raw {
		if c == nil {
			continue
		}
		cols = append(cols, schemaFromAPI(c))
	}
	return cols, nil
}

// GetCollection returns a single collection's schema and document count.
func (s *Store) GetCollection(ctx context.Context, name string) (col db.CollectionSchema, err error) {
	start := time.Now()
	defer func() { observe(db.OpGetCollection, name, start, err) }()

	raw, err := s.client.Collection(name).Retrieve(ctx)
	if err != nil {
		return db.CollectionSchema{}, wrapErr(db.OpGetCollection, name, err)
	}
	return schemaFromAPI(raw), nil
}

func schemaFromAPI(c *api.CollectionResponse) db.CollectionSchema {
	fields := make([]db.SchemaField, len(c.Fields))
	for i, f := range c.Fields {
		fields[i] = db.SchemaField{Name: f.Name, Type: f.Type}
	}
	var numDocs int64
	if c.NumDocuments != nil {
		numDocs = *c.NumDocuments
	}
	return db.CollectionSchema{Name: c.Name, Fields: fields, NumDocuments: numDocs}
}
