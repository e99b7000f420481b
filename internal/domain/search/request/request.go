package request

import (
	"fmt"

	"github.com/kailas-cloud/folio/internal/domain"
	"github.com/kailas-cloud/folio/internal/domain/search/page"
)

// MatchAll is the wildcard query.
const MatchAll = "*"

// MaxQueryLength is the maximum allowed search query length.
const MaxQueryLength = 4096

// SpeechSearch is a validated request for speeches within a play.
type SpeechSearch struct {
	playID  string
	query   string
	page    int
	perPage int
}

// NewSpeechSearch validates and normalizes a speech search.
// Defaults: empty query -> "*", page < 1 -> 1, perPage < 1 -> 250.
// perPage above 250 is rejected.
func NewSpeechSearch(playID, query string, pageNum, perPage int) (SpeechSearch, error) {
	if playID == "" {
		return SpeechSearch{}, fmt.Errorf("%w: play id is required", domain.ErrInvalidArgument)
	}
	if len(query) > MaxQueryLength {
		return SpeechSearch{}, fmt.Errorf("%w: query too long (max %d)", domain.ErrInvalidArgument, MaxQueryLength)
	}
	if query == "" {
		query = MatchAll
	}
	if pageNum < 1 {
		pageNum = 1
	}
	if perPage < 1 {
		perPage = page.MaxSize
	}
	if perPage > page.MaxSize {
		return SpeechSearch{}, fmt.Errorf("%w: page size %d exceeds %d",
			domain.ErrInvalidArgument, perPage, page.MaxSize)
	}
	return SpeechSearch{playID: playID, query: query, page: pageNum, perPage: perPage}, nil
}

// PlayID returns the play to search in.
func (r SpeechSearch) PlayID() string { return r.playID }

// Query returns the free-text query ("*" matches everything).
func (r SpeechSearch) Query() string { return r.query }

// Page returns the 1-based page number.
func (r SpeechSearch) Page() int { return r.page }

// PerPage returns the page size.
func (r SpeechSearch) PerPage() int { return r.perPage }
