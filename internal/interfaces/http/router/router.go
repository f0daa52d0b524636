// Package router wires handlers onto the versioned API surface.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/shipdesk/backend/internal/infrastructure/logger"
	"github.com/shipdesk/backend/internal/interfaces/http/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router manages HTTP route registration
type Router struct {
	engine     *gin.Engine
	apiVersion string
	registrars []RouteRegistrar
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g. "v1", "v2")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
		registrars: make([]RouteRegistrar, 0),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a RouteRegistrar to be registered later
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// Setup registers all routes with the engine under the versioned API group
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)

	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
}

// EngineConfig holds the middleware configuration for a new engine
type EngineConfig struct {
	Logger         *zap.Logger
	ServiceName    string
	CORS           middleware.CORSConfig
	Account        middleware.AccountMiddlewareConfig
	MaxBodyBytes   int64
	TraceEnabled   bool
	TrustedProxies []string
}

// NewEngine builds a gin engine with the standard middleware chain:
// recovery, request ID, structured request logging, security headers,
// CORS, body limit, account scoping, and optional tracing.
func NewEngine(cfg EngineConfig) (*gin.Engine, error) {
	engine := gin.New()

	if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}

	engine.Use(logger.Recovery(cfg.Logger))
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(cfg.Logger))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(cfg.CORS))

	if cfg.MaxBodyBytes > 0 {
		engine.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	}

	if cfg.TraceEnabled {
		engine.Use(otelgin.Middleware(cfg.ServiceName))
	}

	engine.Use(middleware.AccountMiddlewareWithConfig(cfg.Account))

	return engine, nil
}
