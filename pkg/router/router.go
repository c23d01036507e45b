package router

import (
	"net/http"
	"slices"
	"time"

	"movie-dialogue-api/backend/internal/api"
	"movie-dialogue-api/backend/pkg/config"
	"movie-dialogue-api/backend/pkg/di"
	"movie-dialogue-api/backend/pkg/errors"
	"movie-dialogue-api/backend/pkg/jwt"
	"movie-dialogue-api/backend/pkg/logger"
	"movie-dialogue-api/backend/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/time/rate"
)

// Track server start time for uptime calculations
var startTime = time.Now()

// Router is the main router for the application
type Router struct {
	Engine      *gin.Engine
	Container   *di.Container
	Logger      *logger.Logger
	Config      *config.Config
	RateLimiter *middleware.RateLimiter
}

// New creates a new router with the given container
func New(container *di.Container) *Router {
	cfg := container.Config

	// Configure Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	// POST bodies must not be redirected between the slash variants
	engine.RedirectTrailingSlash = false

	// Use the logger middleware first to capture all requests
	engine.Use(logger.Middleware(container.Logger))

	if cfg.Observability.TracingEnabled {
		engine.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	}
	if cfg.Observability.MetricsEnabled {
		engine.Use(container.Telemetry.Metrics.Middleware())
	}

	// Compression wraps the writer before anything renders a body
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(cors.New(corsConfig(cfg.Security.AllowedOrigins)))

	engine.Use(errors.ErrorHandler(api.TranslateError))
	engine.Use(errors.RecoveryWithLogger())

	rateLimiter := middleware.NewRateLimiter(container.Logger, middleware.RateLimiterOptions{
		Limit:          rate.Limit(cfg.Security.RateLimit),
		Burst:          cfg.Security.RateLimitBurst,
		ExpiryDuration: time.Hour,
	})
	engine.Use(rateLimiter.Middleware())

	return &Router{
		Engine:      engine,
		Container:   container,
		Logger:      container.Logger,
		Config:      cfg,
		RateLimiter: rateLimiter,
	}
}

// SetupRoutes registers all application routes
func (r *Router) SetupRoutes() {
	r.setupHealthRoutes()
	r.setupOpenAPIRoutes()

	if h := r.Container.Telemetry.MetricsHandler(); h != nil {
		r.Engine.GET("/metrics", gin.WrapH(h))
	}

	resources := r.Engine.Group("/")
	resources.Use(middleware.Timeout(r.Config.Database.Timeout))
	if r.Config.OpenAPI.Validation {
		r.AddOpenAPIValidation(resources)
	}

	var writeGuard []gin.HandlerFunc
	if r.Container.JWTService != nil {
		writeGuard = append(writeGuard, middleware.RequireScope(r.Container.JWTService, jwt.ScopeConversationsWrite, r.Logger))
		r.Logger.Info("Conversation writes require a bearer token", "scope", jwt.ScopeConversationsWrite)
	}
	r.Container.Handlers.Register(resources, writeGuard...)

	r.Engine.NoRoute(func(c *gin.Context) {
		_ = c.Error(errors.NewNotFoundError(errors.CodeRouteNotFound, "No route matches "+c.Request.Method+" "+c.Request.URL.Path))
	})
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", logger.RequestIDHeader)
	cfg.ExposeHeaders = []string{logger.RequestIDHeader, "Retry-After"}
	cfg.MaxAge = 24 * time.Hour

	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
