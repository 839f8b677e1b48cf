package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/z5ni/catalog-api/docs/swagger"
	"github.com/z5ni/catalog-api/pkg/app"
	"github.com/z5ni/catalog-api/pkg/config"
	"github.com/z5ni/catalog-api/pkg/events"
	"github.com/z5ni/catalog-api/pkg/httpx"
	"github.com/z5ni/catalog-api/pkg/logger"
	"github.com/z5ni/catalog-api/pkg/telemetry"
	catalogApi "github.com/z5ni/catalog-api/services/catalog/application/api"
	"github.com/z5ni/catalog-api/services/catalog/application/consumers"
	"github.com/z5ni/catalog-api/services/catalog/infrastructure/persistence/memory"
	usersApi "github.com/z5ni/catalog-api/services/users/application/api"
)

// @title					Catalog API
// @version				1.0
// @description			Items catalog service with validated models, per-request dependency units, and request timing.
// @contact.name			API Support
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/
// @schemes				http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional — log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	eventBus := events.NewBus(log)
	defer eventBus.Close() //nolint:errcheck

	// All item state lives here; it resets with the process.
	store := memory.NewItemRepository()

	consumerCtx, stopConsumers := context.WithCancel(ctx)
	defer stopConsumers()
	if err := consumers.StartAudit(consumerCtx, eventBus, log); err != nil {
		log.Error("failed to start audit consumer", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}

	appConfig := &app.Application{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Store:    store,
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/", rootHandler(cfg.RootDelay))
	r.Get("/info", infoHandler(cfg))
	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		EventBus: eventBus,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	registerRoutes(r, appConfig)

	srv := httpx.NewServer(cfg.Addr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	catalogApi.CatalogRoutes(r, a)
	usersApi.UserRoutes(r, a)
}

// rootHandler greets after a simulated upstream latency. The delay suspends
// only the current request: it waits on a timer or the request context,
// never the whole process.
func rootHandler(delay time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(delay):
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"message": "Hello World!"})
	}
}

// infoHandler reports the service build identity.
func infoHandler(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{
			"service":     cfg.ServiceName,
			"version":     cfg.ServiceVersion,
			"environment": cfg.Environment,
		})
	}
}
