package folio

import (
	"context"

	domcat "github.com/kailas-cloud/folio/internal/domain/catalog"
	domcol "github.com/kailas-cloud/folio/internal/domain/collection"
	"github.com/kailas-cloud/folio/internal/domain/search/request"
	"github.com/kailas-cloud/folio/internal/domain/search/result"
	healthuc "github.com/kailas-cloud/folio/internal/usecase/health"
)

// --- worksUseCase mock ---

type mockWorksUC struct {
	listFn func(ctx context.Context) ([]domcat.Work, error)
}

func (m *mockWorksUC) List(ctx context.Context) ([]domcat.Work, error) {
	return m.listFn(ctx)
}

// --- speechesUseCase mock ---

type mockSpeechesUC struct {
	searchFn func(ctx context.Context, req request.SpeechSearch) (result.SpeechSearch, error)
}

func (m *mockSpeechesUC) Search(ctx context.Context, req request.SpeechSearch) (result.SpeechSearch, error) {
	return m.searchFn(ctx, req)
}

// --- collectionUseCase mock ---

type mockCollectionUC struct {
	listFn func(ctx context.Context) ([]domcol.Collection, error)
	dumpFn func(ctx context.Context, name string) (string, error)
}

func (m *mockCollectionUC) List(ctx context.Context) ([]domcol.Collection, error) {
	return m.listFn(ctx)
}

func (m *mockCollectionUC) Dump(ctx context.Context, name string) (string, error) {
	return m.dumpFn(ctx, name)
}

// --- health ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(_ context.Context) healthuc.Report { return m.report }

func healthReport(status string) healthuc.Report {
	return healthuc.Report{
		Status: healthuc.Status(status),
		Checks: map[string]healthuc.CheckResult{healthuc.CheckTypesense: healthuc.CheckResult(status)},
	}
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }
