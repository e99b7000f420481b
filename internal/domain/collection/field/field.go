package field

// Type is the search service's type name for a field ("string", "int32", "string[]", ...).
// Types are reported by the remote schema and passed through unchanged.
type Type string

// Field is an immutable value object describing a schema field.
type Field struct {
	name      string
	fieldType Type
}

// Reconstruct creates a Field from a remote schema entry.
func Reconstruct(name string, ft Type) Field {
	return Field{name: name, fieldType: ft}
}

// Name returns the field name.
func (f Field) Name() string { return f.name }

// FieldType returns the field's type as reported by the schema.
func (f Field) FieldType() Type { return f.fieldType }
