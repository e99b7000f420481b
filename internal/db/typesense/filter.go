package typesense

import (
	"regexp"
	"strings"

	"github.com/kailas-cloud/folio/internal/domain/search/filter"
)

var bareValueRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// filterBy renders an expression in filter_by syntax: clauses joined by &&,
// equality as field:=v, membership as field:=[a,b]. Values outside the bare
// charset are backtick-quoted; the filter package already rejects backticks.
func filterBy(expr filter.Expression) string {
	parts := make([]string, 0, len(expr.Clauses()))
	for _, c := range expr.Clauses() {
		parts = append(parts, clause(c))
	}
	return strings.Join(parts, " && ")
}

func clause(c filter.Clause) string {
	var b strings.Builder
	b.WriteString(c.Field())
	b.WriteString(":=")

	if c.Op() == filter.Eq {
		b.WriteString(quote(c.Values()[0]))
		return b.String()
	}

	b.WriteByte('[')
	for i, v := range c.Values() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quote(v))
	}
	b.WriteByte(']')
	return b.String()
}

func quote(v string) string {
	if bareValueRegex.MatchString(v) {
		return v
	}
	return "`" + v + "`"
}
