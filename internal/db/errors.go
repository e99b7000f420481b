package db

import "errors"

// ErrCollectionNotFound signals that the service does not know the collection.
var ErrCollectionNotFound = errors.New("db: collection not found")

// Op constants name the service endpoints for error context.
const (
	OpSearch          = "documents.search"
	OpListCollections = "collections.retrieve"
	OpGetCollection   = "collection.retrieve"
	OpHealth          = "health"
)

// Error wraps an underlying error with the operation and collection for diagnostics.
type Error struct {
	Op         string
	Collection string
	Err        error
}

func (e *Error) Error() string {
	if e.Collection == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Collection + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }
