package db

import (
	"encoding/json"

	"github.com/kailas-cloud/folio/internal/domain/search/filter"
)

// Query is the input for a document search.
// Page is 1-based. An empty QueryBy searches without a query field (match-all only).
type Query struct {
	Collection string
	Q          string
	QueryBy    string
	Filter     filter.Expression
	Page       int
	PerPage    int
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Found int
	Page  int
	Hits  []Hit
}

// Hit is a single matched document as returned by the service.
type Hit struct {
	Document   json.RawMessage `json:"document"`
	Highlights json.RawMessage `json:"highlights,omitempty"`
	TextMatch  int64           `json:"text_match,omitempty"`
}

// CollectionSchema is a collection's metadata.
type CollectionSchema struct {
	Name         string
	Fields       []SchemaField
	NumDocuments int64
}

// SchemaField is one field of a collection schema.
type SchemaField struct {
	Name string
	Type string
}
