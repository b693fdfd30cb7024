package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	importerapp "github.com/danstoll/Northpass-PP-sub000/internal/application/importer"
	partnerapp "github.com/danstoll/Northpass-PP-sub000/internal/application/partner"
	reconcileapp "github.com/danstoll/Northpass-PP-sub000/internal/application/reconcile"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/lms"
	"github.com/danstoll/Northpass-PP-sub000/internal/infrastructure/cache"
	"github.com/danstoll/Northpass-PP-sub000/internal/infrastructure/config"
	"github.com/danstoll/Northpass-PP-sub000/internal/infrastructure/logger"
	"github.com/danstoll/Northpass-PP-sub000/internal/infrastructure/northpass"
	"github.com/danstoll/Northpass-PP-sub000/internal/infrastructure/pacing"
	"github.com/danstoll/Northpass-PP-sub000/internal/infrastructure/persistence"
	"github.com/danstoll/Northpass-PP-sub000/internal/infrastructure/telemetry"
	"github.com/danstoll/Northpass-PP-sub000/internal/interfaces/http/handler"
	"github.com/danstoll/Northpass-PP-sub000/internal/interfaces/http/middleware"
	"github.com/danstoll/Northpass-PP-sub000/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/danstoll/Northpass-PP-sub000/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Partner Sync API
//	@version		1.0
//	@description	Partner/LMS reconciliation service: CRM contact import, partner domain derivation, LMS drift analysis and sync execution

//	@contact.name	API Support
//	@contact.url	https://github.com/danstoll/Northpass-PP-sub000

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

const version = "1.0.0"

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

	log.Info("Starting partner sync service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize OpenTelemetry providers. With telemetry disabled these are
	// no-op wrappers and the middleware below passes requests straight through.
	otelCtx := context.Background()
	tracerProvider, err := telemetry.NewTracerProvider(otelCtx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}

	meterProvider, err := telemetry.NewMeterProvider(otelCtx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.MetricsExportInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}

	loggerProvider, err := telemetry.NewLoggerProvider(otelCtx, telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.Enabled && cfg.Telemetry.LogsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize logger provider", zap.Error(err))
	}

	// Bridge zap to the OTEL Collector so log records carry trace context
	if loggerProvider.IsEnabled() {
		otelCore := telemetry.NewZapOTELCore(telemetry.ZapBridgeConfig{
			ServiceName:    cfg.Telemetry.ServiceName,
			LoggerProvider: loggerProvider,
			Level:          zapcore.InfoLevel,
		})
		log = telemetry.NewBridgedLogger(log.Core(), otelCore,
			zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
		log.Info("OTEL log bridge enabled")
	}

	// Initialize database connection
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	contactRepo := persistence.NewGormContactRepository(db.DB)
	partnerRepo := persistence.NewGormPartnerRepository(db.DB)
	dismissalRepo := persistence.NewGormOrphanDismissalRepository(db.DB)
	historyRepo := persistence.NewGormImportHistoryRepository(db.DB)
	store := persistence.NewGormContactStore(db.DB)

	// LMS snapshot cache: Redis when configured, in-memory otherwise
	cacheFactory := cache.NewSnapshotCacheFactory(
		cfg.Redis,
		cfg.Sync.SnapshotTTL,
		cache.WithLogger(log),
		cache.WithInMemoryFallback(true),
	)
	var snapshotCache lms.SnapshotCache
	if cfg.Sync.SnapshotBackend == "redis" {
		snapshotCache, err = cacheFactory.CreateCache()
		if err != nil {
			log.Fatal("Failed to create snapshot cache", zap.Error(err))
		}
	} else {
		snapshotCache = cacheFactory.CreateInMemoryCache()
	}

	// Northpass LMS client
	lmsClient, err := northpass.NewClient(&northpass.Config{
		BaseURL:    cfg.Northpass.BaseURL,
		APIKey:     cfg.Northpass.APIKey,
		Timeout:    cfg.Northpass.Timeout,
		MaxRetries: cfg.Northpass.MaxRetries,
		RetryDelay: cfg.Northpass.RetryDelay,
	}, log)
	if err != nil {
		log.Fatal("Failed to create LMS client", zap.Error(err))
	}

	// Initialize application services
	contactService := partnerapp.NewContactService(contactRepo, store)
	partnerService := partnerapp.NewPartnerService(partnerRepo)
	orphanService := partnerapp.NewOrphanService(dismissalRepo, partnerRepo)
	importService := importerapp.NewContactImportService(contactRepo, partnerRepo, historyRepo, log)
	historyService := importerapp.NewImportHistoryService(historyRepo)

	analysisService := reconcileapp.NewAnalysisService(
		store, partnerRepo, dismissalRepo, lmsClient, snapshotCache, log, cfg.Sync.SnapshotMaxAge,
	)
	executorService := reconcileapp.NewExecutorService(
		lmsClient, store, partnerRepo, pacing.NewFixedDelay(cfg.Sync.InterCallDelay), log,
	)
	syncService := reconcileapp.NewSyncService(analysisService, executorService, log)

	// Initialize HTTP handlers
	contactHandler := handler.NewContactHandler(contactService)
	partnerHandler := handler.NewPartnerHandler(partnerService)
	orphanHandler := handler.NewOrphanHandler(orphanService)
	importHandler := handler.NewImportHandler(importService, historyService)
	reconcileHandler := handler.NewReconcileHandler(analysisService, syncService)
	systemHandler := handler.NewSystemHandler(contactService, cfg.App.Name, version)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, in order: request ID, tracing, metrics, recovery,
	// logging, security headers, CORS, body limit, rate limit
	engine.Use(middleware.RequestID())
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.TracingAttributeInjector())
	engine.Use(middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
		MeterProvider: meterProvider,
		ServiceName:   cfg.Telemetry.ServiceName,
		Enabled:       cfg.Telemetry.Enabled,
	}))
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Swagger documentation endpoint
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Register API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(contactHandler).
		Register(partnerHandler).
		Register(orphanHandler).
		Register(importHandler).
		Register(reconcileHandler).
		Register(systemHandler)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	// Flush any buffered telemetry before exiting
	if err := tracerProvider.Shutdown(ctx); err != nil {
		log.Error("Error shutting down tracer provider", zap.Error(err))
	}
	if err := meterProvider.Shutdown(ctx); err != nil {
		log.Error("Error shutting down meter provider", zap.Error(err))
	}
	if err := loggerProvider.Shutdown(ctx); err != nil {
		log.Error("Error shutting down logger provider", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports service liveness and database reachability
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
