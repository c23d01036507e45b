package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server struct {
		Port    string        `env:"PORT" envDefault:"8081"`
		Env     string        `env:"APP_ENV" envDefault:"development"`
		Timeout time.Duration `env:"SERVER_TIMEOUT" envDefault:"30s"`
	}

	// Database configuration
	Database struct {
		Host           string        `env:"DB_HOST" envDefault:"localhost"`
		Port           string        `env:"DB_PORT" envDefault:"5432"`
		User           string        `env:"DB_USER" envDefault:"postgres"`
		Password       string        `env:"DB_PASSWORD" envDefault:"postgres"`
		Name           string        `env:"DB_NAME" envDefault:"movies"`
		SSLMode        string        `env:"DB_SSL_MODE" envDefault:"disable"`
		MaxConns       int           `env:"DB_MAX_CONNS" envDefault:"20"`
		Timeout        time.Duration `env:"DB_TIMEOUT" envDefault:"5s"`
		ConnectRetries int           `env:"DB_CONNECT_RETRIES" envDefault:"5"`
		RetryDelay     time.Duration `env:"DB_RETRY_DELAY" envDefault:"5s"`
	}

	// Security configuration
	Security struct {
		RateLimit        float64  `env:"RATE_LIMIT" envDefault:"20"`
		RateLimitBurst   int      `env:"RATE_LIMIT_BURST" envDefault:"40"`
		AllowedOrigins   []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
		WriteTokenSecret string   `env:"WRITE_TOKEN_SECRET"`
	}

	// Logging configuration
	Logging struct {
		Level  string `env:"LOG_LEVEL" envDefault:"info"`
		Format string `env:"LOG_FORMAT" envDefault:"json"`
	}

	// Response cache settings; REDIS_URL switches the store from in-process LRU to Redis
	Cache struct {
		Enabled  bool          `env:"CACHE_ENABLED" envDefault:"true"`
		TTL      time.Duration `env:"CACHE_TTL" envDefault:"5m"`
		MaxSize  int           `env:"CACHE_MAX_SIZE" envDefault:"1000"`
		RedisURL string        `env:"REDIS_URL"`
	}

	// Observability settings
	Observability struct {
		TracingEnabled bool   `env:"TRACING_ENABLED" envDefault:"false"`
		MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
		ServiceName    string `env:"SERVICE_NAME" envDefault:"movie-dialogue-api"`
	}

	OpenAPI struct {
		Validation bool `env:"OPENAPI_VALIDATION" envDefault:"false"`
	}

	// Vault settings; when enabled, secrets override the values above
	Vault struct {
		Enabled     bool   `env:"VAULT_ENABLED" envDefault:"false"`
		Address     string `env:"VAULT_ADDR"`
		Token       string `env:"VAULT_TOKEN"`
		SecretsPath string `env:"VAULT_SECRETS_PATH" envDefault:"secret/data/movie-dialogue-api"`
	}
}

var (
	instance *Config
	once     sync.Once
)

// New creates a new Config instance with values from environment variables
// Uses singleton pattern to ensure only one instance exists
func New() *Config {
	once.Do(func() {
		// Load .env file if exists
		_ = godotenv.Load()

		cfg, err := Load()
		if err != nil {
			panic(fmt.Sprintf("invalid configuration: %v", err))
		}
		instance = cfg
	})

	return instance
}

// Get returns the singleton Config instance
func Get() *Config {
	if instance == nil {
		return New()
	}
	return instance
}

// Load parses and validates configuration from the process environment
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFrom parses configuration from the given variables only, ignoring the process environment
func LoadFrom(environment map[string]string) (*Config, error) {
	return load(env.Options{Environment: environment})
}

func load(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges env tags cannot express
func (c *Config) Validate() error {
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.Database.MaxConns)
	}
	if c.Database.ConnectRetries < 1 {
		return fmt.Errorf("DB_CONNECT_RETRIES must be positive, got %d", c.Database.ConnectRetries)
	}
	if c.Security.RateLimit <= 0 || c.Security.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT and RATE_LIMIT_BURST must be positive")
	}
	if c.Cache.Enabled && c.Cache.MaxSize < 1 {
		return fmt.Errorf("CACHE_MAX_SIZE must be positive when the cache is enabled")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Logging.Format)
	}
	if c.Vault.Enabled && c.Vault.Address == "" {
		return fmt.Errorf("VAULT_ADDR is required when VAULT_ENABLED is set")
	}
	return nil
}

// IsDevelopment reports whether APP_ENV selects the development profile
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// WriteGuardEnabled reports whether conversation writes require a bearer token
func (c *Config) WriteGuardEnabled() bool {
	return c.Security.WriteTokenSecret != ""
}
