package di

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-dialogue-api/backend/internal/api"
	"movie-dialogue-api/backend/internal/repository"
	"movie-dialogue-api/backend/internal/service"
	"movie-dialogue-api/backend/pkg/cache"
	"movie-dialogue-api/backend/pkg/config"
	"movie-dialogue-api/backend/pkg/health"
	"movie-dialogue-api/backend/pkg/jwt"
	"movie-dialogue-api/backend/pkg/logger"
	"movie-dialogue-api/backend/pkg/observability"
	"movie-dialogue-api/backend/pkg/resilience"

	"gorm.io/gorm"
)

const healthCheckPeriod = 30 * time.Second

// Container holds all the dependencies for the application
type Container struct {
	DB           *gorm.DB
	Config       *config.Config
	Logger       *logger.Logger
	Repositories *repository.Repositories
	Cache        cache.Store
	Breaker      *resilience.CircuitBreaker
	Telemetry    *observability.Telemetry
	Services     *service.Services
	Handlers     *api.Handlers
	Health       *health.Checker
	// JWTService is nil when writes are not guarded
	JWTService *jwt.Service

	closers []func(context.Context) error
}

// New creates a new dependency injection container
func New(db *gorm.DB, cfg *config.Config, log *logger.Logger) (*Container, error) {
	if log == nil {
		log = logger.New(logger.ConfigFor(cfg.Logging.Level, cfg.Logging.Format))
	}

	c := &Container{
		DB:           db,
		Config:       cfg,
		Logger:       log,
		Repositories: repository.NewRepositories(db),
		Health:       health.NewChecker(log, healthCheckPeriod),
	}
	c.Health.RegisterDatabaseCheck(c.Repositories.Ping)

	telemetry, err := observability.Setup(observability.Options{
		ServiceName:    cfg.Observability.ServiceName,
		TracingEnabled: cfg.Observability.TracingEnabled,
		MetricsEnabled: cfg.Observability.MetricsEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up telemetry: %w", err)
	}
	c.Telemetry = telemetry
	c.closers = append(c.closers, telemetry.Shutdown)

	if err := c.setupCache(); err != nil {
		_ = c.Close(context.Background())
		return nil, err
	}

	c.Breaker = service.NewBreaker(log)
	c.Services = service.New(c.Repositories, service.Options{
		Cache:   c.Cache,
		Breaker: c.Breaker,
		Metrics: telemetry.Metrics,
		Logger:  log,
	})
	c.Handlers = api.NewHandlers(c.Services)

	if cfg.WriteGuardEnabled() {
		c.JWTService = jwt.NewService(cfg.Security.WriteTokenSecret, 0)
	}

	return c, nil
}

func (c *Container) setupCache() error {
	cfg := c.Config.Cache
	switch {
	case !cfg.Enabled:
		c.Logger.Info("Response cache disabled")
	case cfg.RedisURL != "":
		client, err := cache.NewRedisClient(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to configure redis cache: %w", err)
		}
		store := cache.NewRedisStore(client, cfg.TTL)
		c.Cache = store
		c.Health.RegisterCacheCheck(store.Ping)
		c.closers = append(c.closers, func(context.Context) error { return store.Close() })
		c.Logger.Info("Response cache backed by redis", "ttl", cfg.TTL.String())
	default:
		c.Cache = cache.NewMemoryStore(cfg.MaxSize, cfg.TTL)
		c.Logger.Info("Response cache in memory", "size", cfg.MaxSize, "ttl", cfg.TTL.String())
	}
	return nil
}

// Close releases the resources the container opened, in reverse order
func (c *Container) Close(ctx context.Context) error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
