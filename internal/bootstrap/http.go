package bootstrap

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/nextgen-academy/academy-api/config"
	httpx "github.com/nextgen-academy/academy-api/internal/http"
	"github.com/nextgen-academy/academy-api/internal/observability/metrics"
)

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services *ServiceContainer
	Logger   *slog.Logger
}

// StartHTTPServer creates and starts the HTTP server.
// Returns the server instance for graceful shutdown.
func StartHTTPServer(cfg *HTTPServerConfig) *http.Server {
	if cfg == nil || cfg.Services == nil {
		return nil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	services := httpx.RouterServices{
		Courses:        cfg.Services.Courses,
		Admissions:     cfg.Services.Admissions,
		FAQs:           cfg.Services.FAQs,
		Gallery:        cfg.Services.Gallery,
		Stats:          cfg.Services.Stats,
		Gates:          cfg.Services.Gates,
		Images:         cfg.Services.Images,
		CookieDomain:   appCfg.HTTP.CookieDomain,
		LoginPath:      appCfg.HTTP.LoginPath,
		MaxUploadBytes: appCfg.Uploads.MaxBytes,
		Logger:         logger,
	}
	if cfg.Services.Auth != nil {
		services.Auth = cfg.Services.Auth
	}

	router := httpx.NewRouter(services)

	// Order: Recover -> Logging -> Metrics -> Router
	h := metrics.Middleware(cfg.Services.Metrics)(router)
	h = httpx.Logging(logger)(h)
	h = httpx.Recover(logger)(h)

	return startServer(logger, h, appCfg.HTTP.Addr)
}

func startServer(logger *slog.Logger, handler http.Handler, addr string) *http.Server {
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
		}
	}()

	return server
}

// ShutdownConfig contains dependencies for HTTP server shutdown.
type ShutdownConfig struct {
	Context  context.Context
	Server   *http.Server
	Services *ServiceContainer
	Logger   *slog.Logger
}

// ShutdownHTTPServer gracefully shuts down the HTTP server and releases
// service resources.
func ShutdownHTTPServer(cfg ShutdownConfig) error {
	if cfg.Server == nil {
		return nil
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(cfg.Context, 10*time.Second)
	defer cancel()

	if err := cfg.Server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	cfg.Services.Close()

	if cfg.Logger != nil {
		cfg.Logger.Info("HTTP server stopped")
	}

	return nil
}
