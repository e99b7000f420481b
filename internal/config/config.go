package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// Config holds the folio API configuration.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Typesense TypesenseConfig `yaml:"typesense"`
	Auth      AuthConfig      `yaml:"auth"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// TypesenseConfig holds search service connection settings.
type TypesenseConfig struct {
	Host          string `yaml:"host"` // bare host or full URL
	APIKey        string `yaml:"api_key"`
	Protocol      string `yaml:"protocol"` // https (default) or http, for a bare host
	Port          int    `yaml:"port"`     // default 443, for a bare host
	TimeoutSec    int    `yaml:"timeout_sec"`
	MaxScenePages int    `yaml:"max_scene_pages"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
// ${VAR} and ${VAR:-default} references are expanded from the environment first.
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 30
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Typesense.Protocol == "" {
		c.Typesense.Protocol = "https"
	}
	if c.Typesense.Port <= 0 {
		c.Typesense.Port = 443
	}
	if c.Typesense.TimeoutSec <= 0 {
		c.Typesense.TimeoutSec = 10
	}
	if c.Typesense.MaxScenePages <= 0 {
		c.Typesense.MaxScenePages = 40
	}
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		result = multierror.Append(result, fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port))
	}
	if strings.TrimSpace(c.Typesense.Host) == "" {
		result = multierror.Append(result, errors.New("typesense.host is required (TYPESENSE_HOST)"))
	}
	if strings.TrimSpace(c.Typesense.APIKey) == "" {
		result = multierror.Append(result, errors.New("typesense.api_key is required (TYPESENSE_API_KEY)"))
	}
	switch c.Typesense.Protocol {
	case "", "https", "http":
		// ok
	default:
		result = multierror.Append(result,
			fmt.Errorf("typesense.protocol must be \"https\" or \"http\", got %q", c.Typesense.Protocol))
	}
	if c.Typesense.Port < 0 || c.Typesense.Port > 65535 {
		result = multierror.Append(result,
			fmt.Errorf("typesense.port must be between 1 and 65535, got %d", c.Typesense.Port))
	}

	return result.ErrorOrNil()
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
