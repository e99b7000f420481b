package typesense

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/kailas-cloud/folio/internal/db"
	"github.com/kailas-cloud/folio/internal/domain"
	"github.com/kailas-cloud/folio/internal/domain/search/filter"
)

const testAPIKey = "test-key"

// newTestStore starts a fake search service and returns a Store pointed at it.
func newTestStore(t *testing.T, setup func(r chi.Router)) *Store {
	t.Helper()
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.Header.Get("X-TYPESENSE-API-KEY") != testAPIKey {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Forbidden"})
				return
			}
			next.ServeHTTP(w, req)
		})
	})
	setup(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	s, err := NewStore(Config{Host: srv.URL, APIKey: testAPIKey})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewStore_MissingCredentials(t *testing.T) {
	tests := []Config{
		{},
		{Host: "example.com"},
		{APIKey: "k"},
		{Host: "  ", APIKey: "k"},
	}
	for _, cfg := range tests {
		if _, err := NewStore(cfg); !errors.Is(err, domain.ErrMissingCredentials) {
			t.Errorf("NewStore(%+v) err = %v, want ErrMissingCredentials", cfg, err)
		}
	}
}

func TestServerURL(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    string
		wantErr bool
	}{
		{"bare host", Config{Host: "xyz.a1.typesense.net"}, "https://xyz.a1.typesense.net:443", false},
		{"custom port", Config{Host: "localhost", Protocol: "http", Port: 8108}, "http://localhost:8108", false},
		{"full url", Config{Host: "http://127.0.0.1:8108/"}, "http://127.0.0.1:8108", false},
		{"bad protocol", Config{Host: "h", Protocol: "ftp"}, "", true},
		{"no authority", Config{Host: "http://"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ServerURL(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ServerURL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSearch_SendsParamsAndDecodesHits(t *testing.T) {
	var got map[string]string
	s := newTestStore(t, func(r chi.Router) {
		r.Get("/collections/{name}/documents/search", func(w http.ResponseWriter, req *http.Request) {
			q := req.URL.Query()
			got = map[string]string{
				"collection": chi.URLParam(req, "name"),
				"q":          q.Get("q"),
				"query_by":   q.Get("query_by"),
				"filter_by":  q.Get("filter_by"),
				"page":       q.Get("page"),
				"per_page":   q.Get("per_page"),
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"found": 2,
				"page":  1,
				"hits": []map[string]any{
					{"document": map[string]any{"id": "a1", "play_id": "p1", "title": "Act 1"}, "text_match": 100},
					{"document": map[string]any{"id": "a2", "play_id": "p1", "title": "Act 2"}},
				},
			})
		})
	})

	c, err := filter.NewEq("play_id", "p1")
	if err != nil {
		t.Fatal(err)
	}
	res, err := s.Search(context.Background(), &db.Query{
		Collection: "acts",
		Q:          "*",
		QueryBy:    "title",
		Filter:     filter.And(c),
		Page:       1,
		PerPage:    250,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	want := map[string]string{
		"collection": "acts", "q": "*", "query_by": "title",
		"filter_by": "play_id:=p1", "page": "1", "per_page": "250",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}

	if res.Found != 2 || len(res.Hits) != 2 {
		t.Fatalf("found=%d hits=%d", res.Found, len(res.Hits))
	}
	if res.Hits[0].TextMatch != 100 {
		t.Errorf("text_match = %d, want 100", res.Hits[0].TextMatch)
	}
	var doc struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(res.Hits[1].Document, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.ID != "a2" || doc.Title != "Act 2" {
		t.Errorf("doc = %+v", doc)
	}
}

func TestSearch_OmitsEmptyParams(t *testing.T) {
	var seen paramPresence
	s := newTestStore(t, func(r chi.Router) {
		r.Get("/collections/{name}/documents/search", func(w http.ResponseWriter, req *http.Request) {
			seen = paramPresence{
				hasQueryBy:  req.URL.Query().Has("query_by"),
				hasFilterBy: req.URL.Query().Has("filter_by"),
			}
			writeJSON(w, http.StatusOK, map[string]any{"found": 0, "hits": []any{}})
		})
	})

	res, err := s.Search(context.Background(), &db.Query{Collection: "plays", Q: "*", PerPage: 250})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if seen.hasQueryBy || seen.hasFilterBy {
		t.Errorf("unexpected params: %+v", seen)
	}
	if res.Found != 0 || len(res.Hits) != 0 {
		t.Errorf("res = %+v", res)
	}
}

type paramPresence struct {
	hasQueryBy  bool
	hasFilterBy bool
}

func TestSearch_CollectionNotFound(t *testing.T) {
	s := newTestStore(t, func(r chi.Router) {
		r.Get("/collections/{name}/documents/search", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not found."})
		})
	})

	_, err := s.Search(context.Background(), &db.Query{Collection: "nope", Q: "*"})
	if !errors.Is(err, db.ErrCollectionNotFound) {
		t.Fatalf("err = %v, want ErrCollectionNotFound", err)
	}
	var dbErr *db.Error
	if !errors.As(err, &dbErr) {
		t.Fatalf("err = %T, want *db.Error", err)
	}
	if dbErr.Op != db.OpSearch || dbErr.Collection != "nope" {
		t.Errorf("op=%q collection=%q", dbErr.Op, dbErr.Collection)
	}
}

func TestSearch_BadRequest(t *testing.T) {
	s := newTestStore(t, func(r chi.Router) {
		r.Get("/collections/{name}/documents/search", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Could not parse the filter query."})
		})
	})

	_, err := s.Search(context.Background(), &db.Query{Collection: "scenes", Q: "*"})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, db.ErrCollectionNotFound) {
		t.Error("400 must not map to not found")
	}
}

func TestListCollections_PreservesFieldOrder(t *testing.T) {
	var gotQuery string
	s := newTestStore(t, func(r chi.Router) {
		r.Get("/collections", func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			writeJSON(w, http.StatusOK, []map[string]any{
				{
					"name":          "speeches",
					"num_documents": 31000,
					"fields": []map[string]any{
						{"name": "scene_id", "type": "string"},
						{"name": "speaker", "type": "string"},
						{"name": "content", "type": "string"},
					},
				},
				{"name": "plays", "num_documents": 37, "fields": []map[string]any{}},
			})
		})
	})

	cols, err := s.ListCollections(context.Background())
	if err != nil {
		t.Fatalf("ListCollections: %v", err)
	}
	if gotQuery != "" {
		t.Errorf("query = %q, want none", gotQuery)
	}
	if len(cols) != 2 {
		t.Fatalf("len = %d, want 2", len(cols))
	}
	if cols[0].Name != "speeches" || cols[0].NumDocuments != 31000 {
		t.Errorf("cols[0] = %+v", cols[0])
	}
	wantFields := []string{"scene_id", "speaker", "content"}
	for i, f := range cols[0].Fields {
		if f.Name != wantFields[i] || f.Type != "string" {
			t.Errorf("field[%d] = %+v", i, f)
		}
	}
}

func TestGetCollection(t *testing.T) {
	s := newTestStore(t, func(r chi.Router) {
		r.Get("/collections/{name}", func(w http.ResponseWriter, req *http.Request) {
			if chi.URLParam(req, "name") != "acts" {
				writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"name": "acts", "num_documents": 185,
				"fields": []map[string]any{{"name": "play_id", "type": "string"}},
			})
		})
	})

	col, err := s.GetCollection(context.Background(), "acts")
	if err != nil {
		t.Fatalf("GetCollection: %v", err)
	}
	if col.NumDocuments != 185 || len(col.Fields) != 1 {
		t.Errorf("col = %+v", col)
	}

	_, err = s.GetCollection(context.Background(), "missing")
	if !errors.Is(err, db.ErrCollectionNotFound) {
		t.Errorf("err = %v, want ErrCollectionNotFound", err)
	}
}

func TestPing(t *testing.T) {
	s := newTestStore(t, func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
		})
	})
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestPing_Unhealthy(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": false})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	s, err := NewStore(Config{Host: srv.URL, APIKey: "whatever"})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := s.Ping(context.Background()); err == nil {
		t.Fatal("expected error for unhealthy service")
	}
}
