package folio

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/folio/internal/domain/search/request"
)

// SearchOption configures a speech search.
type SearchOption interface {
	applySearch(*searchConfig)
}

type searchOptionFunc func(*searchConfig)

func (f searchOptionFunc) applySearch(c *searchConfig) { f(c) }

type searchConfig struct {
	page     int
	pageSize int
}

// WithPage selects the 1-based result page. Default: 1.
func WithPage(n int) SearchOption {
	return searchOptionFunc(func(c *searchConfig) {
		c.page = n
	})
}

// WithPageSize sets the number of speeches per page, at most 250. Default: 250.
func WithPageSize(n int) SearchOption {
	return searchOptionFunc(func(c *searchConfig) {
		c.pageSize = n
	})
}

// SpeechService searches speeches within a play.
type SpeechService struct {
	svc speechesUseCase
	obs *observer
}

// Search finds speeches of a play matching query ("" or "*" matches all) and
// returns them with the play's characters, acts and scenes.
// An unknown play id yields ErrNotFound.
func (s *SpeechService) Search(
	ctx context.Context, playID, query string, opts ...SearchOption,
) (_ SpeechSearchResult, err error) {
	start := time.Now()
	defer func() { s.obs.observe("speeches.search", start, err) }()

	cfg := &searchConfig{}
	for _, o := range opts {
		o.applySearch(cfg)
	}

	req, err := request.NewSpeechSearch(playID, query, cfg.page, cfg.pageSize)
	if err != nil {
		return SpeechSearchResult{}, fmt.Errorf("search speeches: %w", err)
	}

	res, err := s.svc.Search(ctx, req)
	if err != nil {
		return SpeechSearchResult{}, err
	}
	return fromInternalSpeechSearch(res), nil
}
