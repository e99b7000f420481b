package folio

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	host     string
	apiKey   string
	protocol string
	port     int
	timeout  time.Duration

	maxScenePages int

	logger     *zap.Logger
	metricsReg prometheus.Registerer
}

// WithTypesense sets the search service host and API key. Both are required.
// host is either a bare host name, reached over HTTPS on port 443,
// or a full URL such as "http://localhost:8108".
func WithTypesense(host, apiKey string) Option {
	return optionFunc(func(c *clientConfig) {
		c.host = host
		c.apiKey = apiKey
	})
}

// WithProtocol overrides the protocol used for a bare host. Default: https.
func WithProtocol(protocol string) Option {
	return optionFunc(func(c *clientConfig) {
		c.protocol = protocol
	})
}

// WithPort overrides the port used for a bare host. Default: 443.
func WithPort(port int) Option {
	return optionFunc(func(c *clientConfig) {
		c.port = port
	})
}

// WithTimeout sets the connection timeout of the underlying HTTP client.
// Default: 10s.
func WithTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.timeout = d
	})
}

// WithMaxScenePages bounds the number of scene pages fetched per speech search.
// Default: 40.
func WithMaxScenePages(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxScenePages = n
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
