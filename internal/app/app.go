package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/codex-k8s/ai-tools/internal/dsl"
	"github.com/codex-k8s/ai-tools/internal/http/health"
	"github.com/codex-k8s/ai-tools/internal/timeutil"
	"github.com/codex-k8s/ai-tools/internal/tool"
)

// APIPrefix is where the tool API is mounted.
const APIPrefix = "/api"

// Routes lists the handlers served next to the health probes.
type Routes struct {
	// MCP serves the streamable MCP transport at server.http.path.
	MCP http.Handler
	// API serves the tool API under APIPrefix.
	API http.Handler
	// Metrics serves the Prometheus scrape endpoint.
	Metrics http.Handler
}

// App controls the HTTP server lifecycle.
type App struct {
	baseCtx         context.Context
	server          *http.Server
	health          *health.Handler
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

// New initializes the HTTP server with health endpoints.
func New(baseCtx context.Context, serverCfg dsl.ServerConfig, routes Routes, logger *slog.Logger, shutdownTimeout time.Duration) (*App, error) {
	if baseCtx == nil {
		return nil, fmt.Errorf("base context is nil")
	}
	if routes.MCP == nil && routes.API == nil {
		return nil, fmt.Errorf("no handlers configured")
	}

	readTimeout := timeutil.ParseDurationOrDefault(serverCfg.HTTP.ReadTimeout, 15*time.Second)
	writeTimeout := timeutil.ParseDurationOrDefault(serverCfg.HTTP.WriteTimeout, 60*time.Second)
	idleTimeout := timeutil.ParseDurationOrDefault(serverCfg.HTTP.IdleTimeout, 60*time.Second)

	healthHandler := health.New(serverCfg.Name, len(tool.All()))
	mux := chi.NewRouter()
	mux.Get("/healthz", healthHandler.Healthz)
	mux.Get("/readyz", healthHandler.Readyz)
	if routes.MCP != nil {
		mux.Handle(serverCfg.HTTP.Path, routes.MCP)
	}
	if routes.API != nil {
		mux.Mount(APIPrefix, routes.API)
	}
	if routes.Metrics != nil {
		mux.Handle("/metrics", routes.Metrics)
	}

	srv := &http.Server{
		Addr:         serverCfg.HTTP.Listen,
		Handler:      mux,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	if shutdownTimeout == 0 {
		shutdownTimeout = timeutil.ParseDurationOrDefault(serverCfg.ShutdownTimeout, 10*time.Second)
	}

	return &App{
		baseCtx:         baseCtx,
		server:          srv,
		health:          healthHandler,
		logger:          logger,
		shutdownTimeout: shutdownTimeout,
	}, nil
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.health.SetReady()
		if a.logger != nil {
			a.logger.Info("http server started", "addr", a.server.Addr)
		}
		errCh <- a.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		if a.logger != nil {
			a.logger.Info("shutdown requested")
		}
		return a.shutdown()
	case err := <-errCh:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		if a.logger != nil {
			a.logger.Error("http server error", "error", err)
		}
		return err
	}
}

func (a *App) shutdown() error {
	a.health.SetNotReady()
	ctx, cancel := context.WithTimeout(a.baseCtx, a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
