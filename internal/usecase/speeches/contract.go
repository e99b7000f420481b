package speeches

import (
	"context"

	domcat "github.com/kailas-cloud/folio/internal/domain/catalog"
)

// Repository reads the play records joined by a speech search.
type Repository interface {
	PlaysByIDs(ctx context.Context, ids []string) []domcat.Play
	CharactersByPlay(ctx context.Context, playID string) ([]domcat.Character, error)
	ActsByPlay(ctx context.Context, playID string) ([]domcat.Act, error)
	ScenesByActs(ctx context.Context, actIDs []string) ([]domcat.Scene, error)
	SearchSpeeches(
		ctx context.Context, sceneIDs []string, query string, page, perPage int,
	) ([]domcat.Speech, int, error)
}
