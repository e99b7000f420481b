package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/folio/internal/db"
	"github.com/kailas-cloud/folio/internal/domain"
	domcat "github.com/kailas-cloud/folio/internal/domain/catalog"
	domcol "github.com/kailas-cloud/folio/internal/domain/collection"
	"github.com/kailas-cloud/folio/internal/domain/search/request"
	"github.com/kailas-cloud/folio/internal/domain/search/result"
	healthuc "github.com/kailas-cloud/folio/internal/usecase/health"
)

// WorksService lists works.
type WorksService interface {
	List(ctx context.Context) ([]domcat.Work, error)
}

// SpeechesService searches speeches within a play.
type SpeechesService interface {
	Search(ctx context.Context, req request.SpeechSearch) (result.SpeechSearch, error)
}

// CollectionsService inspects collections.
type CollectionsService interface {
	List(ctx context.Context) ([]domcol.Collection, error)
	Dump(ctx context.Context, name string) (string, error)
}

// HealthService reports dependency health.
type HealthService interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the read-only catalog API.
type Server struct {
	works         WorksService
	speeches      SpeechesService
	collections   CollectionsService
	health        HealthService
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	works WorksService,
	speeches SpeechesService,
	collections CollectionsService,
	health HealthService,
	logger *zap.Logger,
) *Server {
	s := &Server{
		works:       works,
		speeches:    speeches,
		collections: collections,
		health:      health,
		logger:      logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, CodeNotFound),
		sentinelHandler(domain.ErrInvalidArgument, http.StatusBadRequest, CodeBadRequest),
		sentinelHandler(domain.ErrInvalidFilter, http.StatusBadRequest, CodeBadRequest),
		sentinelHandler(domain.ErrPageLimitExceeded, http.StatusBadGateway, CodePageLimitExceeded),
		sentinelHandler(domain.ErrUpstream, http.StatusBadGateway, CodeUpstreamError),
	}
	return s
}

// Register mounts the API routes on r.
func (s *Server) Register(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Get("/works", s.ListWorks)
	r.Get("/plays/{playID}/speeches", s.SearchSpeeches)
	r.Get("/collections", s.ListCollections)
	r.Get("/collections/{name}/dump", s.DumpCollection)
}

// ListWorks handles GET /works.
func (s *Server) ListWorks(w http.ResponseWriter, r *http.Request) {
	works, err := s.works.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]WorkResponse, len(works))
	for i, wk := range works {
		items[i] = WorkResponse{ID: wk.ID(), Title: wk.Title()}
	}
	writeJSON(w, http.StatusOK, ListResponse[WorkResponse]{Items: items})
}

// SearchSpeeches handles GET /plays/{playID}/speeches.
func (s *Server) SearchSpeeches(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := intParam(q.Get("page"))
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "page must be an integer")
		return
	}
	perPage, err := intParam(q.Get("per_page"))
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "per_page must be an integer")
		return
	}

	req, err := request.NewSpeechSearch(chi.URLParam(r, "playID"), q.Get("q"), page, perPage)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	res, err := s.speeches.Search(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, speechSearchToResponse(res))
}

// ListCollections handles GET /collections.
func (s *Server) ListCollections(w http.ResponseWriter, r *http.Request) {
	cols, err := s.collections.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]CollectionResponse, len(cols))
	for i, c := range cols {
		items[i] = collectionToResponse(c)
	}
	writeJSON(w, http.StatusOK, ListResponse[CollectionResponse]{Items: items})
}

// DumpCollection handles GET /collections/{name}/dump.
func (s *Server) DumpCollection(w http.ResponseWriter, r *http.Request) {
	out, err := s.collections.Dump(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(out))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err //nolint:wrapcheck // caller reports a fixed message
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
// Not-found messages raised by folio carry the missing id and are returned whole;
// those reported by the search service may embed its response body and are not.
func safeDomainMessage(err error) string {
	if errors.Is(err, domain.ErrNotFound) {
		var storeErr *db.Error
		if errors.As(err, &storeErr) {
			return domain.ErrNotFound.Error()
		}
		return err.Error()
	}
	sentinels := []error{
		domain.ErrInvalidArgument,
		domain.ErrInvalidFilter,
		domain.ErrPageLimitExceeded,
		domain.ErrUpstream,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
