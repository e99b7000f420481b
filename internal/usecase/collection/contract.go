package collection

import (
	"context"
	"encoding/json"

	domcol "github.com/kailas-cloud/folio/internal/domain/collection"
)

// Repository defines the read contract for collections.
type Repository interface {
	List(ctx context.Context) ([]domcol.Collection, error)
	Sample(ctx context.Context, name string) ([]json.RawMessage, error)
}
