package collection

import (
	"github.com/kailas-cloud/folio/internal/domain/collection/field"
)

// Collection describes a remote index: its schema fields (in schema order)
// and the number of documents it holds.
type Collection struct {
	name          string
	fields        []field.Field
	documentCount int64
}

// Reconstruct creates a Collection from remote metadata.
func Reconstruct(name string, fields []field.Field, documentCount int64) Collection {
	return Collection{
		name:          name,
		fields:        fields,
		documentCount: documentCount,
	}
}

// Name returns the collection name.
func (c Collection) Name() string { return c.name }

// Fields returns the schema fields in schema order.
func (c Collection) Fields() []field.Field { return c.fields }

// DocumentCount returns the number of documents in the collection.
func (c Collection) DocumentCount() int64 { return c.documentCount }

// FieldByName looks up a field by name.
func (c Collection) FieldByName(name string) (field.Field, bool) {
	for _, f := range c.fields {
		if f.Name() == name {
			return f, true
		}
	}
	return field.Field{}, false
}
