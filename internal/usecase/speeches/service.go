package speeches

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/folio/internal/domain"
	domcat "github.com/kailas-cloud/folio/internal/domain/catalog"
	"github.com/kailas-cloud/folio/internal/domain/search/request"
	"github.com/kailas-cloud/folio/internal/domain/search/result"
)

// Service searches speeches within a play and joins the play's structure
// client-side, since the search service has no joins.
type Service struct {
	repo Repository
}

// New creates a speech search service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search runs play -> characters -> acts -> scenes -> speeches, one call at a time.
// Any failing step aborts the whole search; no partial result is returned.
func (s *Service) Search(ctx context.Context, req request.SpeechSearch) (result.SpeechSearch, error) {
	plays := s.repo.PlaysByIDs(ctx, []string{req.PlayID()})
	if len(plays) == 0 {
		return result.SpeechSearch{}, fmt.Errorf("search speeches: play with id %s %w", req.PlayID(), domain.ErrNotFound)
	}
	play := plays[0]

	characters, err := s.repo.CharactersByPlay(ctx, play.ID())
	if err != nil {
		return result.SpeechSearch{}, fmt.Errorf("search speeches: fetch characters: %w", err)
	}

	acts, err := s.repo.ActsByPlay(ctx, play.ID())
	if err != nil {
		return result.SpeechSearch{}, fmt.Errorf("search speeches: fetch acts: %w", err)
	}

	scenes, err := s.repo.ScenesByActs(ctx, domcat.ActIDs(acts))
	if err != nil {
		return result.SpeechSearch{}, fmt.Errorf("search speeches: fetch scenes: %w", err)
	}

	speeches, found, err := s.repo.SearchSpeeches(
		ctx, domcat.SceneIDs(scenes), req.Query(), req.Page(), req.PerPage(),
	)
	if err != nil {
		return result.SpeechSearch{}, fmt.Errorf("search speeches: fetch speeches: %w", err)
	}

	return result.NewSpeechSearch(
		play, characters, acts, scenes, speeches, found, req.Page(), req.PerPage(),
	), nil
}
