package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	fulfillmentapp "github.com/shipdesk/backend/internal/application/fulfillment"
	"github.com/shipdesk/backend/internal/domain/picking"
	"github.com/shipdesk/backend/internal/infrastructure/cache"
	"github.com/shipdesk/backend/internal/infrastructure/config"
	"github.com/shipdesk/backend/internal/infrastructure/logger"
	"github.com/shipdesk/backend/internal/infrastructure/persistence"
	"github.com/shipdesk/backend/internal/infrastructure/telemetry"
	"github.com/shipdesk/backend/internal/interfaces/http/handler"
	"github.com/shipdesk/backend/internal/interfaces/http/middleware"
	"github.com/shipdesk/backend/internal/interfaces/http/router"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting ShipDesk Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize OpenTelemetry tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Initialize OpenTelemetry metrics
	meterProvider, err := telemetry.NewMeterProvider(context.Background(), telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	defer func() {
		if err := meterProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down meter provider", zap.Error(err))
		}
	}()

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Database query tracing
	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		if err := db.DB.Use(otelgorm.NewPlugin()); err != nil {
			log.Warn("Failed to enable database tracing", zap.Error(err))
		}
	}

	// Select the progress store backend
	kvStore, err := newProgressStore(cfg, db, log)
	if err != nil {
		log.Fatal("Failed to initialize progress store", zap.Error(err))
	}
	log.Info("Progress store initialized", zap.String("backend", cfg.Picking.ProgressStore))

	// Picking metrics with periodic backlog collection
	var pickingMetrics *telemetry.PickingMetrics
	if cfg.Telemetry.Enabled {
		pickingMetrics, err = telemetry.NewPickingMetrics(telemetry.PickingMetricsConfig{
			Meter:           meterProvider.Meter("shipdesk.picking"),
			Logger:          log,
			BacklogProvider: telemetry.NewGormBacklogMetricsProvider(db.DB),
		})
		if err != nil {
			log.Fatal("Failed to initialize picking metrics", zap.Error(err))
		}
		pickingMetrics.StartPeriodicCollection(context.Background(), telemetry.NewGormAccountProvider(db.DB), 0)
		defer pickingMetrics.Stop()
	}

	// Initialize repositories
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	warehouseRepo := persistence.NewGormWarehouseRepository(db.DB)

	// Initialize application services
	progressService := fulfillmentapp.NewProgressService(picking.NewStateStore(kvStore), log)
	picklistService := fulfillmentapp.NewPickListService(orderRepo, warehouseRepo, progressService, log)
	orderService := fulfillmentapp.NewOrderService(orderRepo, warehouseRepo)
	warehouseService := fulfillmentapp.NewWarehouseService(warehouseRepo)
	labelService := fulfillmentapp.NewLabelService(warehouseRepo, orderRepo)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Report JSON field names in binding errors
	middleware.SetupValidator()

	// Build the engine with the standard middleware chain
	engine, err := router.NewEngine(router.EngineConfig{
		Logger:      log,
		ServiceName: cfg.Telemetry.ServiceName,
		CORS: middleware.CORSConfig{
			AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
			AllowMethods:     cfg.HTTP.CORSAllowMethods,
			AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
			ExposeHeaders:    []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Account:        middleware.DefaultAccountConfig(),
		MaxBodyBytes:   cfg.HTTP.MaxBodySize,
		TraceEnabled:   cfg.Telemetry.Enabled,
		TrustedProxies: cfg.HTTP.TrustedProxies,
	})
	if err != nil {
		log.Fatal("Failed to build HTTP engine", zap.Error(err))
	}

	// Register API routes
	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(handler.NewPickListHandler(picklistService, cfg.Picking.DefaultLimit, pickingMetrics)).
		Register(handler.NewProgressHandler(progressService, pickingMetrics)).
		Register(handler.NewOrderHandler(orderService, pickingMetrics)).
		Register(handler.NewWarehouseHandler(warehouseService, labelService)).
		Register(handler.NewSystemHandler(db.Ping)).
		Setup()

	// HTTP server with timeouts from config
	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}

// newProgressStore builds the KV store backing pick/pack progress according
// to the configured backend
func newProgressStore(cfg *config.Config, db *persistence.Database, log *zap.Logger) (picking.KVStore, error) {
	switch cfg.Picking.ProgressStore {
	case "redis":
		return cache.NewRedisKVStore(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	case "database":
		return persistence.NewGormKVStore(db.DB), nil
	case "memory":
		log.Warn("Using in-memory progress store; progress is lost on restart")
		return cache.NewInMemoryKVStore(), nil
	default:
		return nil, errors.New("unknown progress store backend: " + cfg.Picking.ProgressStore)
	}
}
