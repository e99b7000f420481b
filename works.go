package folio

import (
	"context"
	"time"
)

// WorkService lists works.
type WorkService struct {
	svc worksUseCase
	obs *observer
}

// List returns up to 250 works, in index order.
func (s *WorkService) List(ctx context.Context) (_ []Work, err error) {
	start := time.Now()
	defer func() { s.obs.observe("works.list", start, err) }()

	works, err := s.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Work, len(works))
	for i, w := range works {
		out[i] = Work{ID: w.ID(), Title: w.Title()}
	}
	return out, nil
}
