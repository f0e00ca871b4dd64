package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/codex-k8s/ai-tools/internal/tool"
)

// Config stores environment-driven settings for the server.
type Config struct {
	// ConfigPath is the path to the YAML configuration file. Empty selects the embedded default.
	ConfigPath string `env:"AI_TOOLS_CONFIG"`
	// LogLevel sets the logger level.
	LogLevel string `env:"AI_TOOLS_LOG_LEVEL" envDefault:"info"`
	// Lang selects message language for templates.
	Lang string `env:"AI_TOOLS_LANG" envDefault:"pt"`
	// ShutdownTimeout controls graceful shutdown duration. Zero defers to
	// server.shutdown_timeout.
	ShutdownTimeout time.Duration `env:"AI_TOOLS_SHUTDOWN_TIMEOUT"`
	// BackendURL overrides the backend base URL from the YAML file.
	BackendURL string `env:"AI_TOOLS_BACKEND_URL"`
	// Model is sent to the default backend.
	Model string `env:"AI_TOOLS_MODEL"`
	// FallbackModel labels fabricated results.
	FallbackModel string `env:"AI_TOOLS_FALLBACK_MODEL" envDefault:"nvidia/nemtron-nano-12b-vl:free"`
	// FallbackDelay is the pause before a fabricated result is returned.
	FallbackDelay time.Duration `env:"AI_TOOLS_FALLBACK_DELAY" envDefault:"2s"`
	// Traces selects the span exporter: none or stderr.
	Traces string `env:"AI_TOOLS_TRACES" envDefault:"none"`
	// RequestTimeout bounds each upstream call. Zero disables it.
	RequestTimeout time.Duration `env:"AI_TOOLS_REQUEST_TIMEOUT" envDefault:"0s"`
	// Endpoints holds per-tool endpoint overrides.
	Endpoints Endpoints `envPrefix:"AI_TOOLS_ENDPOINT_"`
}

// Override replaces the endpoint of a single tool.
type Override struct {
	// URL is the absolute endpoint URL.
	URL string `env:"URL"`
	// Mode is backend or webhook. Empty infers it from the URL.
	Mode string `env:"MODE"`
}

// Endpoints lists overrides for each known tool.
type Endpoints struct {
	TrendImpactAnalysis   Override `envPrefix:"TREND_IMPACT_ANALYSIS_"`
	LegacyCreative        Override `envPrefix:"LEGACY_CREATIVE_"`
	IntelligenceExtension Override `envPrefix:"INTELLIGENCE_EXTENSION_"`
	SustainableSolutions  Override `envPrefix:"SUSTAINABLE_SOLUTIONS_"`
	ReinventionManifesto  Override `envPrefix:"REINVENTION_MANIFESTO_"`
	ProfessionalMap       Override `envPrefix:"PROFESSIONAL_MAP_"`
}

// ByTool returns the overrides that set a URL or a mode, keyed by tool.
func (e Endpoints) ByTool() map[tool.ID]Override {
	all := map[tool.ID]Override{
		tool.TrendImpactAnalysis:   e.TrendImpactAnalysis,
		tool.LegacyCreative:        e.LegacyCreative,
		tool.IntelligenceExtension: e.IntelligenceExtension,
		tool.SustainableSolutions:  e.SustainableSolutions,
		tool.ReinventionManifesto:  e.ReinventionManifesto,
		tool.ProfessionalMap:       e.ProfessionalMap,
	}
	out := make(map[tool.ID]Override, len(all))
	for id, override := range all {
		override.URL = strings.TrimSpace(override.URL)
		override.Mode = strings.TrimSpace(override.Mode)
		if override.URL == "" && override.Mode == "" {
			continue
		}
		out[id] = override
	}
	return out
}

// Load parses environment variables into Config.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}
