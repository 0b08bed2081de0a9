package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	appevent "github.com/crown/backend/internal/application/event"
	appfleet "github.com/crown/backend/internal/application/fleet"
	"github.com/crown/backend/internal/application/marketing"
	apppartner "github.com/crown/backend/internal/application/partner"
	"github.com/crown/backend/internal/application/report"
	"github.com/crown/backend/internal/infrastructure/cache"
	"github.com/crown/backend/internal/infrastructure/config"
	"github.com/crown/backend/internal/infrastructure/copywriter"
	"github.com/crown/backend/internal/infrastructure/event"
	"github.com/crown/backend/internal/infrastructure/logger"
	"github.com/crown/backend/internal/infrastructure/persistence"
	"github.com/crown/backend/internal/infrastructure/telemetry"
	"github.com/crown/backend/internal/interfaces/http/handler"
	"github.com/crown/backend/internal/interfaces/http/middleware"
	"github.com/crown/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//	@title			CROWN Classic Motors API
//	@version		1.0
//	@description	Inventory, partner network and dashboard API for a luxury car brokerage

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Bootstrap logger for the telemetry setup; replaced once the OTLP core exists
	bootLog, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: logger.DefaultTimeFormat,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tel := setupTelemetry(ctx, cfg, bootLog)

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: logger.DefaultTimeFormat,
	}, tel.logs.ZapCore(logger.ParseLevel(cfg.Telemetry.LogsLevel)))
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting CROWN Classic Motors backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", cfg.App.Version),
	)

	// Repositories
	carRepo := persistence.NewMemoryCarRepository()
	sellerRepo := persistence.NewMemorySellerRepository()
	buyerRepo := persistence.NewMemoryBuyerRepository()
	if cfg.Seed.Enabled {
		if err := persistence.Seed(ctx, carRepo, sellerRepo, buyerRepo); err != nil {
			log.Fatal("Failed to seed data", zap.Error(err))
		}
		log.Info("Seed data loaded")
	}

	// Domain events
	bus := event.NewInMemoryEventBus(log)
	if cfg.Event.LogEvents {
		bus.Subscribe(event.NewLogHandler(log))
	}
	brokerageMetrics, err := telemetry.NewBrokerageMetricsFromProvider(tel.meters)
	if err != nil {
		log.Warn("Brokerage metrics unavailable", zap.Error(err))
	} else {
		bus.Subscribe(appevent.NewMetricsHandler(brokerageMetrics))
	}
	if err := bus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	// Copy cache
	copyCache, err := cache.NewCopyCacheFactory(cfg.Redis, cfg.CopyCache,
		cache.WithLogger(log),
		cache.WithInMemoryFallback(true),
	).CreateCache()
	if err != nil {
		log.Fatal("Failed to create copy cache", zap.Error(err))
	}
	defer func() {
		if err := copyCache.Close(); err != nil {
			log.Error("Error closing copy cache", zap.Error(err))
		}
	}()

	writer := copywriter.NewGeminiClient(copywriter.Config{
		APIKey:  cfg.Copywriter.APIKey,
		Model:   cfg.Copywriter.Model,
		BaseURL: cfg.Copywriter.BaseURL,
		Timeout: cfg.Copywriter.Timeout,
	}, log)
	if !writer.Configured() {
		log.Warn("No copywriter API key configured, marketing copy will use placeholder text")
	}

	// Services
	carService := appfleet.NewCarService(carRepo, sellerRepo, buyerRepo,
		appfleet.WithEventPublisher(bus),
		appfleet.WithLogger(log),
	)
	sellerService := apppartner.NewSellerService(sellerRepo, carRepo, bus, log)
	buyerService := apppartner.NewBuyerService(buyerRepo, bus, log)
	dashboardService := report.NewDashboardService(carRepo)
	copyService := marketing.NewCopyService(marketing.CopyServiceConfig{
		Writer:   writer,
		Cache:    copyCache,
		CacheTTL: cfg.CopyCache.TTL,
		Cars:     carService,
		Metrics:  brokerageMetrics,
		Logger:   log,
	})

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Warn("Invalid trusted proxies", zap.Error(err))
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log, "/health"))
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
		SkipPaths:   []string{"/health"},
	}))
	engine.Use(middleware.SpanEnricher())
	engine.Use(middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
		MeterProvider: tel.meters,
		Logger:        log,
	}))
	engine.Use(middleware.Profiling(middleware.ProfilingConfig{
		Enabled:   cfg.Telemetry.ProfilingEnabled,
		SkipPaths: []string{"/health"},
	}))
	engine.Use(middleware.SecureWithConfig(middleware.SecurityConfig{
		HSTSEnabled: cfg.App.Env == "production",
		HSTSMaxAge:  middleware.DefaultSecurityConfig().HSTSMaxAge,
		CSP:         middleware.DefaultSecurityConfig().CSP,
	}))

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		go limiter.Run(ctx)
		engine.Use(middleware.RateLimit(limiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	router.Mount(engine, router.NewRouter(engine, router.WithAPIVersion("v1")), router.Handlers{
		Cars:      handler.NewCarHandler(carService, copyService),
		Sellers:   handler.NewSellerHandler(sellerService),
		Buyers:    handler.NewBuyerHandler(buyerService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Marketing: handler.NewMarketingHandler(copyService),
		System: handler.NewSystemHandler(handler.SystemInfo{
			Name:    cfg.App.Name,
			Version: cfg.App.Version,
			Env:     cfg.App.Env,
		}),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := bus.Stop(shutdownCtx); err != nil {
		log.Warn("Event bus stop failed", zap.Error(err))
	}
	tel.shutdown(shutdownCtx, log)

	log.Info("Server exited gracefully")
}

type telemetryProviders struct {
	tracer   *telemetry.TracerProvider
	meters   *telemetry.MeterProvider
	logs     *telemetry.LoggerProvider
	profiler *telemetry.Profiler
}

// setupTelemetry builds every provider. A provider that fails to start is
// replaced by its disabled form so the server still comes up.
func setupTelemetry(ctx context.Context, cfg *config.Config, log *zap.Logger) *telemetryProviders {
	t := cfg.Telemetry
	p := &telemetryProviders{}

	var err error
	p.tracer, err = telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           t.Enabled,
		CollectorEndpoint: t.CollectorEndpoint,
		SamplingRatio:     t.SamplingRatio,
		ServiceName:       t.ServiceName,
		ServiceVersion:    cfg.App.Version,
		Insecure:          t.Insecure,
	}, log)
	if err != nil {
		log.Warn("Tracing disabled", zap.Error(err))
		p.tracer, _ = telemetry.NewTracerProvider(ctx, telemetry.Config{}, log)
	}

	p.meters, err = telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           t.MetricsEnabled,
		CollectorEndpoint: t.CollectorEndpoint,
		ExportInterval:    t.MetricsExportInterval,
		ServiceName:       t.ServiceName,
		ServiceVersion:    cfg.App.Version,
		Insecure:          t.Insecure,
	}, log)
	if err != nil {
		log.Warn("Metrics disabled", zap.Error(err))
		p.meters, _ = telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{}, log)
	}

	p.logs, err = telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           t.LogsEnabled,
		CollectorEndpoint: t.CollectorEndpoint,
		ServiceName:       t.ServiceName,
		ServiceVersion:    cfg.App.Version,
		Insecure:          t.Insecure,
	}, log)
	if err != nil {
		log.Warn("OTLP log export disabled", zap.Error(err))
		p.logs, _ = telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{}, log)
	}

	p.profiler, err = telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:         t.ProfilingEnabled,
		ServerAddress:   t.ProfilingServerAddr,
		ApplicationName: t.ServiceName,
		Version:         cfg.App.Version,
	}, log)
	if err != nil {
		log.Warn("Profiling disabled", zap.Error(err))
		p.profiler, _ = telemetry.NewProfiler(telemetry.ProfilerConfig{}, log)
	}

	if t.SpanProfilesEnabled && p.tracer.IsEnabled() && p.profiler.IsEnabled() {
		if err := p.tracer.EnableSpanProfiles(); err != nil {
			log.Warn("Span profiles unavailable", zap.Error(err))
		}
	}
	return p
}

func (p *telemetryProviders) shutdown(ctx context.Context, log *zap.Logger) {
	if err := p.tracer.Shutdown(ctx); err != nil {
		log.Warn("Tracer shutdown failed", zap.Error(err))
	}
	if err := p.meters.Shutdown(ctx); err != nil {
		log.Warn("Meter shutdown failed", zap.Error(err))
	}
	if err := p.profiler.Stop(); err != nil {
		log.Warn("Profiler stop failed", zap.Error(err))
	}
	if err := p.logs.Shutdown(ctx); err != nil {
		log.Warn("Log provider shutdown failed", zap.Error(err))
	}
}
