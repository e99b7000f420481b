package folio

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/folio/internal/db"
	"github.com/kailas-cloud/folio/internal/db/typesense"
	domcat "github.com/kailas-cloud/folio/internal/domain/catalog"
	domcol "github.com/kailas-cloud/folio/internal/domain/collection"
	"github.com/kailas-cloud/folio/internal/domain/search/request"
	"github.com/kailas-cloud/folio/internal/domain/search/result"
	catalogrepo "github.com/kailas-cloud/folio/internal/repository/catalog"
	collectionrepo "github.com/kailas-cloud/folio/internal/repository/collection"
	collectionuc "github.com/kailas-cloud/folio/internal/usecase/collection"
	healthuc "github.com/kailas-cloud/folio/internal/usecase/health"
	speechesuc "github.com/kailas-cloud/folio/internal/usecase/speeches"
	worksuc "github.com/kailas-cloud/folio/internal/usecase/works"
)

// Internal interfaces for substitution in tests.
type worksUseCase interface {
	List(ctx context.Context) ([]domcat.Work, error)
}

type speechesUseCase interface {
	Search(ctx context.Context, req request.SpeechSearch) (result.SpeechSearch, error)
}

type collectionUseCase interface {
	List(ctx context.Context) ([]domcol.Collection, error)
	Dump(ctx context.Context, name string) (string, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the folio SDK entry point. It is safe for concurrent use.
type Client struct {
	store       db.Pinger
	worksSvc    worksUseCase
	speechesSvc speechesUseCase
	collSvc     collectionUseCase
	healthSvc   healthUseCase
	obs         *observer
}

// New creates a Client. It validates the configuration but makes no request.
// Missing host or API key yields ErrMissingCredentials.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	store, err := typesense.NewStore(typesense.Config{
		Host:     cfg.host,
		APIKey:   cfg.apiKey,
		Protocol: cfg.protocol,
		Port:     cfg.port,
		Timeout:  cfg.timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("folio: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}
	return wireClient(store, cfg, obs), nil
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) *Client {
	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	catRepo := catalogrepo.New(store, logger)
	if cfg.maxScenePages > 0 {
		catRepo = catRepo.WithMaxScenePages(cfg.maxScenePages)
	}
	collRepo := collectionrepo.New(store)

	return &Client{
		store:       store,
		worksSvc:    worksuc.New(catRepo),
		speechesSvc: speechesuc.New(catRepo),
		collSvc:     collectionuc.New(collRepo),
		healthSvc:   healthuc.New(store),
		obs:         obs,
	}
}

// Ping checks search service connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Health reports the status of the search service.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status: string(report.Status),
		Checks: checks,
	}
}

// Works returns the works listing service.
func (c *Client) Works() *WorkService {
	return &WorkService{svc: c.worksSvc, obs: c.obs}
}

// Speeches returns the speech search service.
func (c *Client) Speeches() *SpeechService {
	return &SpeechService{svc: c.speechesSvc, obs: c.obs}
}

// Collections returns the collection introspection service.
func (c *Client) Collections() *CollectionService {
	return &CollectionService{svc: c.collSvc, obs: c.obs}
}
