package works

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/folio/internal/domain"
	domcat "github.com/kailas-cloud/folio/internal/domain/catalog"
)

type mockRepo struct {
	worksFn func(ctx context.Context) ([]domcat.Work, error)
}

func (m *mockRepo) Works(ctx context.Context) ([]domcat.Work, error) { return m.worksFn(ctx) }

func TestList(t *testing.T) {
	svc := New(&mockRepo{worksFn: func(_ context.Context) ([]domcat.Work, error) {
		return []domcat.Work{domcat.NewWork("play-hamlet", "Hamlet")}, nil
	}})

	works, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(works) != 1 || works[0].Title() != "Hamlet" {
		t.Errorf("works = %+v", works)
	}
}

func TestList_Error(t *testing.T) {
	svc := New(&mockRepo{worksFn: func(_ context.Context) ([]domcat.Work, error) {
		return nil, domain.ErrUpstream
	}})

	_, err := svc.List(context.Background())
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("err = %v, want ErrUpstream", err)
	}
	if !strings.HasPrefix(err.Error(), "list works:") {
		t.Errorf("err = %q, want operation context", err)
	}
}
