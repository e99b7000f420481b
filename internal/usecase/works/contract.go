package works

import (
	"context"

	domcat "github.com/kailas-cloud/folio/internal/domain/catalog"
)

// Repository lists plays.
type Repository interface {
	Works(ctx context.Context) ([]domcat.Work, error)
}
