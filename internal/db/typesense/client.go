package typesense

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	tsgo "github.com/typesense/typesense-go/v3/typesense"

	"github.com/kailas-cloud/folio/internal/db"
	"github.com/kailas-cloud/folio/internal/domain"
	"github.com/kailas-cloud/folio/internal/metrics"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Connection defaults. The hosted service is reached over HTTPS on a fixed port.
const (
	DefaultProtocol = "https"
	DefaultPort     = 443
	DefaultTimeout  = 10 * time.Second

	healthTimeout = 5 * time.Second
)

// Config holds connection parameters for the search service.
type Config struct {
	// Host is a bare host name ("xyz.a1.typesense.net") or a full URL ("http://localhost:8108").
	Host     string
	APIKey   string
	Protocol string
	Port     int
	Timeout  time.Duration
}

// Store implements db.Store via typesense-go.
type Store struct {
	client *tsgo.Client
}

// NewStore validates credentials and creates a client. No request is made.
// Retries are disabled: every call is attempted once.
func NewStore(cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.Host) == "" || strings.TrimSpace(cfg.APIKey) == "" {
		return nil, domain.ErrMissingCredentials
	}

	serverURL, err := ServerURL(cfg)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := tsgo.NewClient(
		tsgo.WithServer(serverURL),
		tsgo.WithAPIKey(cfg.APIKey),
		tsgo.WithConnectionTimeout(timeout),
		tsgo.WithNumRetries(0),
	)
	return &Store{client: client}, nil
}

// ServerURL resolves the node URL: a full URL is used as-is, a bare host gets protocol and port.
func ServerURL(cfg Config) (string, error) {
	host := strings.TrimSpace(cfg.Host)
	if strings.Contains(host, "://") {
		u, err := url.Parse(host)
		if err != nil {
			return "", fmt.Errorf("parse host %q: %w", host, err)
		}
		if u.Host == "" {
			return "", fmt.Errorf("host %q has no authority", host)
		}
		return strings.TrimRight(u.String(), "/"), nil
	}

	protocol := cfg.Protocol
	if protocol == "" {
		protocol = DefaultProtocol
	}
	if protocol != "https" && protocol != "http" {
		return "", fmt.Errorf("unsupported protocol %q", protocol)
	}
	port := cfg.Port
	if port <= 0 {
		port = DefaultPort
	}
	return protocol + "://" + net.JoinHostPort(host, strconv.Itoa(port)), nil
}

// Ping checks the service health endpoint.
func (s *Store) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { observe(db.OpHealth, "", start, err) }()

	ok, err := s.client.Health(ctx, healthTimeout)
	if err != nil {
		return &db.Error{Op: db.OpHealth, Err: err}
	}
	if !ok {
		return &db.Error{Op: db.OpHealth, Err: errors.New("service reports unhealthy")}
	}
	return nil
}

// wrapErr attaches op context and maps a 404 to db.ErrCollectionNotFound.
func wrapErr(op, collection string, err error) error {
	var httpErr *tsgo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound {
		err = fmt.Errorf("%w: %s", db.ErrCollectionNotFound, strings.TrimSpace(string(httpErr.Body)))
	}
	return &db.Error{Op: op, Collection: collection, Err: err}
}

func observe(op, collection string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.TypesenseRequestsTotal.WithLabelValues(op, collection, status).Inc()
	metrics.TypesenseRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
