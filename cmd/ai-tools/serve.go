package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/codex-k8s/ai-tools/internal/api"
	"github.com/codex-k8s/ai-tools/internal/app"
	"github.com/codex-k8s/ai-tools/internal/audit"
	"github.com/codex-k8s/ai-tools/internal/constants"
	"github.com/codex-k8s/ai-tools/internal/metrics"
	"github.com/codex-k8s/ai-tools/internal/runtime"
	"github.com/codex-k8s/ai-tools/internal/runtime/executor"
	"github.com/codex-k8s/ai-tools/internal/telemetry"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the tool API and MCP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signalAwareContext(cmd.Context())
			defer cancel()

			loaded, err := opts.load(false)
			if err != nil {
				return err
			}
			return serve(ctx, loaded)
		},
	}
}

func serve(ctx context.Context, loaded *environment) error {
	logger := loaded.logger

	provider, err := telemetry.NewTracerProvider(loaded.dsl.Server.Name, loaded.env.Traces, os.Stderr)
	if err != nil {
		return err
	}
	shutdownTracing := telemetry.Install(provider)
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("trace provider shutdown failed", "error", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	runner, err := runtime.NewRunner(runtime.Options{
		DSL:       loaded.dsl,
		Env:       loaded.env,
		Logger:    logger,
		Templates: loaded.templates,
		Audit:     audit.New(logger),
		Metrics:   metrics.NewPrometheus(registry),
		Tracer:    provider.Tracer(executor.TracerName),
	})
	if err != nil {
		return err
	}

	server, err := runtime.Builder{Runner: runner}.Build(loaded.dsl)
	if err != nil {
		return err
	}

	if loaded.dsl.Server.Transport == constants.TransportStdio {
		logger.Info("serving mcp over stdio")
		return server.Run(ctx, &mcp.StdioTransport{})
	}

	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{
		Stateless: loaded.dsl.Server.HTTP.Stateless,
	})

	application, err := app.New(ctx, loaded.dsl.Server, app.Routes{
		MCP:     mcpHandler,
		API:     api.NewRouter(api.NewHandler(runner, loaded.templates, logger)),
		Metrics: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}, logger, runtime.ShutdownTimeout(loaded.dsl, loaded.env))
	if err != nil {
		return err
	}
	return application.Run(ctx)
}

func signalAwareContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
