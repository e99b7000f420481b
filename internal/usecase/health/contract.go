package health

import "context"

// SearchPinger checks search service availability.
type SearchPinger interface {
	Ping(ctx context.Context) error
}
