package runtime

import (
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/codex-k8s/ai-tools/internal/audit"
	"github.com/codex-k8s/ai-tools/internal/config"
	"github.com/codex-k8s/ai-tools/internal/dsl"
	"github.com/codex-k8s/ai-tools/internal/endpoint"
	"github.com/codex-k8s/ai-tools/internal/guard/inputs"
	"github.com/codex-k8s/ai-tools/internal/guard/limits"
	"github.com/codex-k8s/ai-tools/internal/metrics"
	"github.com/codex-k8s/ai-tools/internal/runtime/executor"
	"github.com/codex-k8s/ai-tools/internal/runtime/guard"
	"github.com/codex-k8s/ai-tools/internal/security"
	"github.com/codex-k8s/ai-tools/internal/templates"
	"github.com/codex-k8s/ai-tools/internal/timeutil"
	"github.com/codex-k8s/ai-tools/internal/tool"
)

// Options collects the dependencies needed to assemble a Runner.
type Options struct {
	// DSL is the validated YAML configuration.
	DSL *dsl.Config
	// Env holds environment overrides.
	Env config.Config
	// Logger is used for structured logging.
	Logger *slog.Logger
	// Templates provides localized messages.
	Templates templates.Renderer
	// Audit records tool events.
	Audit audit.Logger
	// Metrics observes outcomes.
	Metrics metrics.Recorder
	// HTTPClient overrides the upstream HTTP client.
	HTTPClient *http.Client
	// Tracer creates execution spans. Nil uses the global provider.
	Tracer trace.Tracer
}

// NewRunner wires the endpoint table, executor and guard chain.
func NewRunner(opts Options) (*Runner, error) {
	if opts.DSL == nil {
		return nil, fmt.Errorf("config is nil")
	}
	table, err := BuildTable(opts.DSL, opts.Env)
	if err != nil {
		return nil, err
	}
	validator, err := tool.NewValidator()
	if err != nil {
		return nil, err
	}

	model := ResolveModel(opts.DSL, opts.Env)
	timeout := opts.Env.RequestTimeout
	if timeout <= 0 {
		timeout = timeutil.ParseDurationOrDefault(opts.DSL.Backend.Timeout, 0)
	}

	exec := executor.HTTP{
		Endpoints:     table,
		Client:        opts.HTTPClient,
		Timeout:       timeout,
		Model:         model,
		FallbackModel: opts.Env.FallbackModel,
		FallbackDelay: opts.Env.FallbackDelay,
		Messages:      opts.Templates,
		Logger:        opts.Logger,
		Tracer:        opts.Tracer,
	}

	rateLimit := opts.DSL.Server.RateLimit
	chain := guard.Chain{Guards: []guard.Guard{
		inputs.New(validator, opts.Templates),
		limits.New(rateLimit.RatePerMinute, rateLimit.Burst, opts.Templates),
	}}

	if opts.Logger != nil {
		def := table.Default()
		opts.Logger.Info("endpoints resolved",
			"default", def.URL,
			"headers", security.RedactHeaders(def.Headers),
			"timeout", timeout.String(),
		)
	}

	return &Runner{
		Executor: exec,
		Model:    model,
		Guards:   chain,
		Logger:   opts.Logger,
		Audit:    opts.Audit,
		Metrics:  opts.Metrics,
	}, nil
}

// ResolveModel returns AI_TOOLS_MODEL when set, then backend.model.
func ResolveModel(cfg *dsl.Config, env config.Config) string {
	if model := strings.TrimSpace(env.Model); model != "" {
		return model
	}
	if cfg == nil {
		return ""
	}
	return strings.TrimSpace(cfg.Backend.Model)
}

// BuildTable merges the YAML endpoint table with environment overrides.
func BuildTable(cfg *dsl.Config, env config.Config) (*endpoint.Table, error) {
	baseURL := cfg.Backend.BaseURL
	if strings.TrimSpace(env.BackendURL) != "" {
		baseURL = env.BackendURL
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = dsl.DefaultBaseURL
	}
	if _, err := dsl.ParseAbsoluteURL(baseURL); err != nil {
		return nil, fmt.Errorf("backend url is invalid: %w", err)
	}
	fallback := endpoint.DefaultBackend(baseURL, cfg.Backend.ExecutePath)
	fallback.Headers = cfg.Backend.Headers

	dedicated := make(map[string]endpoint.Endpoint, len(cfg.Endpoints))
	for name, ep := range cfg.Endpoints {
		mode, err := dsl.ResolveMode(ep.Mode, ep.URL)
		if err != nil {
			return nil, fmt.Errorf("endpoints.%s.mode: %w", name, err)
		}
		dedicated[name] = endpoint.Endpoint{URL: strings.TrimSpace(ep.URL), Mode: mode, Headers: ep.Headers}
	}

	overrides := env.Endpoints.ByTool()
	ids := make([]string, 0, len(overrides))
	for id := range overrides {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)
	for _, name := range ids {
		override := overrides[tool.ID(name)]
		ep, exists := dedicated[name]
		if override.URL != "" {
			if _, err := dsl.ParseAbsoluteURL(override.URL); err != nil {
				return nil, fmt.Errorf("endpoint override %s: %w", name, err)
			}
			ep.URL = override.URL
			ep.Mode = ""
		} else if !exists {
			return nil, fmt.Errorf("endpoint override %s sets a mode without a url", name)
		}
		mode, err := dsl.ResolveMode(override.Mode, ep.URL)
		if err != nil {
			return nil, fmt.Errorf("endpoint override %s: %w", name, err)
		}
		if override.Mode != "" || ep.Mode == "" {
			ep.Mode = mode
		}
		dedicated[name] = ep
	}

	return endpoint.NewTable(fallback, dedicated), nil
}

// DefaultShutdownTimeout applies when neither env nor config set one.
const DefaultShutdownTimeout = 10 * time.Second

// ShutdownTimeout returns AI_TOOLS_SHUTDOWN_TIMEOUT when set, then
// server.shutdown_timeout, then DefaultShutdownTimeout.
func ShutdownTimeout(cfg *dsl.Config, env config.Config) time.Duration {
	if env.ShutdownTimeout > 0 {
		return env.ShutdownTimeout
	}
	if cfg == nil {
		return DefaultShutdownTimeout
	}
	return timeutil.ParseDurationOrDefault(cfg.Server.ShutdownTimeout, DefaultShutdownTimeout)
}
