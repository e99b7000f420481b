package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/folio/internal/db"
	"github.com/kailas-cloud/folio/internal/domain"
	domcat "github.com/kailas-cloud/folio/internal/domain/catalog"
	"github.com/kailas-cloud/folio/internal/domain/search/filter"
	"github.com/kailas-cloud/folio/internal/domain/search/page"
	"github.com/kailas-cloud/folio/internal/domain/search/request"
	"github.com/kailas-cloud/folio/internal/logger"
)

// DefaultMaxScenePages bounds the scene pagination loop (40 * 250 = 10000 scenes).
const DefaultMaxScenePages = 40

// store is the consumer interface for catalog reads (ISP).
type store interface {
	Search(ctx context.Context, q *db.Query) (*db.SearchResult, error)
}

// Repo reads play records from the search service.
type Repo struct {
	store         store
	logger        *zap.Logger
	maxScenePages int
}

// New creates a catalog repository. l may be nil.
func New(s store, l *zap.Logger) *Repo {
	if l == nil {
		l = zap.NewNop()
	}
	return &Repo{store: s, logger: l, maxScenePages: DefaultMaxScenePages}
}

// WithMaxScenePages overrides the scene page budget. Non-positive values are ignored.
func (r *Repo) WithMaxScenePages(n int) *Repo {
	if n > 0 {
		r.maxScenePages = n
	}
	return r
}

// log prefers the request-scoped logger carried by ctx.
func (r *Repo) log(ctx context.Context) *zap.Logger {
	return logger.FromContextOr(ctx, r.logger)
}

// Works lists plays as (id, title) pairs. Only the first page of 250 is read.
func (r *Repo) Works(ctx context.Context) ([]domcat.Work, error) {
	res, err := r.store.Search(ctx, &db.Query{
		Collection: domcat.CollectionPlays,
		Q:          request.MatchAll,
		QueryBy:    "title",
		Page:       1,
		PerPage:    page.MaxSize,
	})
	if err != nil {
		return nil, upstream(err)
	}

	return decode(res, domcat.CollectionPlays, func(row playRow) domcat.Work {
		return domcat.NewWork(row.ID, row.Title)
	})
}

// PlaysByIDs fetches plays by id. Best effort: failures are logged and yield an empty slice.
func (r *Repo) PlaysByIDs(ctx context.Context, ids []string) []domcat.Play {
	return fetchByIDs(ctx, r, domcat.CollectionPlays, ids, playRow.toDomain)
}

// CharactersByPlay returns the first page of characters of a play.
func (r *Repo) CharactersByPlay(ctx context.Context, playID string) ([]domcat.Character, error) {
	res, err := r.byPlay(ctx, domcat.CollectionCharacters, playID)
	if err != nil {
		return nil, err
	}
	return decode(res, domcat.CollectionCharacters, characterRow.toDomain)
}

// ActsByPlay returns the first page of acts of a play.
func (r *Repo) ActsByPlay(ctx context.Context, playID string) ([]domcat.Act, error) {
	res, err := r.byPlay(ctx, domcat.CollectionActs, playID)
	if err != nil {
		return nil, err
	}
	return decode(res, domcat.CollectionActs, actRow.toDomain)
}

// ScenesByActs pages through all scenes belonging to actIDs until the
// accumulated count reaches the reported total. An empty page ends the loop
// early; exceeding the page budget is an error. Scenes are de-duplicated by id.
func (r *Repo) ScenesByActs(ctx context.Context, actIDs []string) ([]domcat.Scene, error) {
	if len(actIDs) == 0 {
		return []domcat.Scene{}, nil
	}
	clause, err := filter.NewIn("act_id", actIDs)
	if err != nil {
		return nil, fmt.Errorf("build scene filter: %w", err)
	}

	scenes := make([]domcat.Scene, 0, page.MaxSize)
	seen := make(map[string]struct{})
	total := 0

	for pageNum := 1; ; pageNum++ {
		if pageNum > r.maxScenePages {
			return nil, fmt.Errorf("%w: scenes not exhausted after %d pages (have %d of %d)",
				domain.ErrPageLimitExceeded, r.maxScenePages, len(scenes), total)
		}

		res, err := r.store.Search(ctx, &db.Query{
			Collection: domcat.CollectionScenes,
			Q:          request.MatchAll,
			Filter:     filter.And(clause),
			Page:       pageNum,
			PerPage:    page.MaxSize,
		})
		if err != nil {
			return nil, upstream(err)
		}

		batch, err := decode(res, domcat.CollectionScenes, sceneRow.toDomain)
		if err != nil {
			return nil, err
		}
		total = res.Found

		if len(batch) == 0 {
			if len(scenes) < total {
				r.log(ctx).Warn("scene pagination ended early",
					zap.Int("page", pageNum),
					zap.Int("accumulated", len(scenes)),
					zap.Int("found", total),
				)
			}
			return scenes, nil
		}

		for _, s := range batch {
			if _, dup := seen[s.ID()]; dup {
				continue
			}
			seen[s.ID()] = struct{}{}
			scenes = append(scenes, s)
		}

		if len(scenes) >= total {
			return scenes, nil
		}
	}
}

// SearchSpeeches runs a full-text search over speeches in sceneIDs.
// Returns one page of speeches and the server-side found count.
func (r *Repo) SearchSpeeches(
	ctx context.Context, sceneIDs []string, query string, pageNum, perPage int,
) ([]domcat.Speech, int, error) {
	if len(sceneIDs) == 0 {
		return []domcat.Speech{}, 0, nil
	}
	clause, err := filter.NewIn("scene_id", sceneIDs)
	if err != nil {
		return nil, 0, fmt.Errorf("build speech filter: %w", err)
	}

	res, err := r.store.Search(ctx, &db.Query{
		Collection: domcat.CollectionSpeeches,
		Q:          query,
		QueryBy:    "content",
		Filter:     filter.And(clause),
		Page:       pageNum,
		PerPage:    perPage,
	})
	if err != nil {
		return nil, 0, upstream(err)
	}

	speeches, err := decode(res, domcat.CollectionSpeeches, speechRow.toDomain)
	if err != nil {
		return nil, 0, err
	}
	return speeches, res.Found, nil
}

func (r *Repo) byPlay(ctx context.Context, collection, playID string) (*db.SearchResult, error) {
	clause, err := filter.NewEq("play_id", playID)
	if err != nil {
		return nil, fmt.Errorf("build %s filter: %w", collection, err)
	}
	res, err := r.store.Search(ctx, &db.Query{
		Collection: collection,
		Q:          request.MatchAll,
		Filter:     filter.And(clause),
		Page:       1,
		PerPage:    page.MaxSize,
	})
	if err != nil {
		return nil, upstream(err)
	}
	return res, nil
}

// fetchByIDs is the best-effort lookup: no ids means no call, and any failure
// (filter, transport, decoding) is logged and degrades to an empty result.
func fetchByIDs[R any, D any](
	ctx context.Context, r *Repo, collection string, ids []string, conv func(R) D,
) []D {
	if len(ids) == 0 {
		return []D{}
	}

	fail := func(err error) []D {
		r.log(ctx).Error("fetch related documents failed",
			zap.String("collection", collection),
			zap.Int("ids", len(ids)),
			zap.Error(err),
		)
		return []D{}
	}

	clause, err := filter.NewIn("id", ids)
	if err != nil {
		return fail(err)
	}

	res, err := r.store.Search(ctx, &db.Query{
		Collection: collection,
		Q:          request.MatchAll,
		Filter:     filter.And(clause),
		Page:       1,
		PerPage:    min(len(ids), page.MaxSize),
	})
	if err != nil {
		return fail(err)
	}

	out, err := decodeHits(res.Hits, conv)
	if err != nil {
		return fail(err)
	}
	return out
}

func decode[R any, D any](res *db.SearchResult, collection string, conv func(R) D) ([]D, error) {
	out, err := decodeHits(res.Hits, conv)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrUpstream, collection, err)
	}
	return out, nil
}

// upstream marks a store error as an upstream failure, mapping unknown collections to not found.
func upstream(err error) error {
	if errors.Is(err, db.ErrCollectionNotFound) {
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	}
	return fmt.Errorf("%w: %w", domain.ErrUpstream, err)
}
