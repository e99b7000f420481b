package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kailas-cloud/folio/internal/domain"
)

// MaxValuesPerClause bounds a set-membership clause.
const MaxValuesPerClause = 10000

var fieldRegex = regexp.MustCompile(`^[A-Za-z0-9_.]+$`)

// Op is a filter comparison operator.
type Op string

const (
	// Eq matches documents whose field equals the single value.
	Eq Op = "eq"
	// In matches documents whose field equals any of the values.
	In Op = "in"
)

// Clause is a single field predicate.
type Clause struct {
	field  string
	op     Op
	values []string
}

// NewEq creates an equality clause.
func NewEq(field, value string) (Clause, error) {
	if err := validateField(field); err != nil {
		return Clause{}, err
	}
	if err := validateValue(field, value); err != nil {
		return Clause{}, err
	}
	return Clause{field: field, op: Eq, values: []string{value}}, nil
}

// NewIn creates a set-membership clause. At least one value is required.
func NewIn(field string, values []string) (Clause, error) {
	if err := validateField(field); err != nil {
		return Clause{}, err
	}
	if len(values) == 0 {
		return Clause{}, fmt.Errorf("%w: set for %q is empty", domain.ErrInvalidFilter, field)
	}
	if len(values) > MaxValuesPerClause {
		return Clause{}, fmt.Errorf("%w: too many values for %q (max %d)",
			domain.ErrInvalidFilter, field, MaxValuesPerClause)
	}
	for _, v := range values {
		if err := validateValue(field, v); err != nil {
			return Clause{}, err
		}
	}
	vals := make([]string, len(values))
	copy(vals, values)
	return Clause{field: field, op: In, values: vals}, nil
}

// Field returns the field name.
func (c Clause) Field() string { return c.field }

// Op returns the operator.
func (c Clause) Op() Op { return c.op }

// Values returns the compared values.
func (c Clause) Values() []string { return c.values }

// Expression is a conjunction of clauses.
type Expression struct {
	clauses []Clause
}

// And builds an expression requiring every clause to hold.
func And(clauses ...Clause) Expression {
	return Expression{clauses: clauses}
}

// Clauses returns the clauses.
func (e Expression) Clauses() []Clause { return e.clauses }

// IsEmpty reports whether the expression has no clauses.
func (e Expression) IsEmpty() bool { return len(e.clauses) == 0 }

func validateField(field string) error {
	if field == "" {
		return fmt.Errorf("%w: field is required", domain.ErrInvalidFilter)
	}
	if !fieldRegex.MatchString(field) {
		return fmt.Errorf("%w: invalid field name %q", domain.ErrInvalidFilter, field)
	}
	return nil
}

// Values are quoted with backticks on the wire; a backtick cannot be escaped.
func validateValue(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: empty value for %q", domain.ErrInvalidFilter, field)
	}
	if strings.ContainsRune(value, '`') {
		return fmt.Errorf("%w: value for %q contains a backtick", domain.ErrInvalidFilter, field)
	}
	return nil
}
