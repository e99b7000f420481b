package db

import "context"

// Store is the search service facade combining all sub-interfaces.
type Store interface {
	Pinger
	Searcher
	SchemaReader
}

// Pinger checks search service availability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Searcher runs document searches against a named collection.
type Searcher interface {
	Search(ctx context.Context, q *Query) (*SearchResult, error)
}

// SchemaReader introspects collections.
type SchemaReader interface {
	ListCollections(ctx context.Context) ([]CollectionSchema, error)
	GetCollection(ctx context.Context, name string) (CollectionSchema, error)
}
