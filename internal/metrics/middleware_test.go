package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/works", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	})
	r.Get("/plays/{playID}/speeches", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "playID") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/collections/{name}/dump", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	return r
}

func serve(r http.Handler, method, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(method, target, http.NoBody))
	return rr
}

func TestMiddleware_RecordsDurationAndCount(t *testing.T) {
	r := newRouter()

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/works", "200"))
	rr := serve(r, "GET", "/works")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/works", "200"))
	if after-before != 1 {
		t.Errorf("requests_total delta = %f, want 1", after-before)
	}
	if testutil.CollectAndCount(httpRequestDuration) == 0 {
		t.Error("expected http_request_duration_seconds to have observations")
	}
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := newRouter()

	const route = "/plays/{playID}/speeches"
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", route, "200"))
	serve(r, "GET", "/plays/play-hamlet/speeches?q=ghost")
	serve(r, "GET", "/plays/play-macbeth/speeches")
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", route, "200"))

	if after-before != 2 {
		t.Errorf("requests for %s delta = %f, want 2", route, after-before)
	}
}

func TestMiddleware_StatusCodes(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name   string
		target string
		route  string
		status string
	}{
		{"not found play", "/plays/missing/speeches", "/plays/{playID}/speeches", "404"},
		{"upstream failure", "/collections/plays/dump", "/collections/{name}/dump", "502"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", tc.route, tc.status))
			serve(r, "GET", tc.target)
			after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", tc.route, tc.status))
			if after-before != 1 {
				t.Errorf("requests_total{route=%s,status=%s} delta = %f, want 1", tc.route, tc.status, after-before)
			}
		})
	}
}

func TestMiddleware_UnmatchedRoute(t *testing.T) {
	r := newRouter()

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", unmatchedRoute, "404"))
	serve(r, "GET", "/wp-admin/setup.php")
	serve(r, "GET", "/.env")
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", unmatchedRoute, "404"))

	if after-before != 2 {
		t.Errorf("unmatched delta = %f, want 2", after-before)
	}
}

func TestRouteLabel_OutsideChi(t *testing.T) {
	req := httptest.NewRequest("GET", "/works", http.NoBody)
	if got := routeLabel(req); got != unmatchedRoute {
		t.Errorf("routeLabel() = %q, want %q", got, unmatchedRoute)
	}
}

func TestStatusWriter_FirstHeaderWins(t *testing.T) {
	rr := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rr, status: http.StatusOK}

	sw.WriteHeader(http.StatusTeapot)
	sw.WriteHeader(http.StatusInternalServerError)

	if sw.status != http.StatusTeapot {
		t.Errorf("status = %d, want %d", sw.status, http.StatusTeapot)
	}
}

func TestMetricsExposedViaPromhttp(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(httpRequestsTotal, TypesenseRequestsTotal)

	serve(newRouter(), "GET", "/works")
	TypesenseRequestsTotal.WithLabelValues("documents.search", "plays", "ok").Inc()

	rr := serve(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), "GET", "/metrics")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	for _, want := range []string{"folio_http_requests_total", "folio_typesense_requests_total"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics output missing %s", want)
		}
	}
}

func TestRegisterHTTPMetrics_Idempotent(t *testing.T) {
	RegisterHTTPMetrics()
	RegisterHTTPMetrics()
}
