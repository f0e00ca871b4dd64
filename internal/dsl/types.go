package dsl

// Config is the top-level YAML configuration.
type Config struct {
	// Server describes the HTTP API and MCP server settings.
	Server ServerConfig `yaml:"server"`
	// Backend describes the default generation backend.
	Backend BackendConfig `yaml:"backend"`
	// Endpoints maps tool names to dedicated endpoints.
	Endpoints map[string]EndpointConfig `yaml:"endpoints"`
}

// ServerConfig defines server settings.
type ServerConfig struct {
	// Name is the MCP server name.
	Name string `yaml:"name"`
	// Version is the MCP server version.
	Version string `yaml:"version"`
	// Transport selects the MCP transport ("http" or "stdio").
	Transport string `yaml:"transport"`
	// ShutdownTimeout overrides graceful shutdown duration.
	ShutdownTimeout string `yaml:"shutdown_timeout"`
	// HTTP configures the HTTP listener.
	HTTP HTTPConfig `yaml:"http"`
	// RateLimit throttles submissions per tool.
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// HTTPConfig configures the HTTP listener.
type HTTPConfig struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`
	// Path is the MCP HTTP endpoint path.
	Path string `yaml:"path"`
	// ReadTimeout limits request read time.
	ReadTimeout string `yaml:"read_timeout"`
	// WriteTimeout limits response write time.
	WriteTimeout string `yaml:"write_timeout"`
	// IdleTimeout controls idle connections.
	IdleTimeout string `yaml:"idle_timeout"`
	// Stateless disables MCP session tracking.
	Stateless bool `yaml:"stateless"`
}

// RateLimitConfig limits how often each tool may be executed.
type RateLimitConfig struct {
	// RatePerMinute is the sustained rate per tool. Zero disables limiting.
	RatePerMinute int `yaml:"rate_per_minute"`
	// Burst is the bucket size. Defaults to RatePerMinute.
	Burst int `yaml:"burst"`
}

// BackendConfig defines the default generation backend.
type BackendConfig struct {
	// BaseURL is the backend base URL.
	BaseURL string `yaml:"base_url"`
	// ExecutePath is appended to BaseURL.
	ExecutePath string `yaml:"execute_path"`
	// Model is the preferred generation model sent with each request.
	Model string `yaml:"model"`
	// Timeout bounds each upstream call. Empty disables it.
	Timeout string `yaml:"timeout"`
	// Headers adds HTTP headers.
	Headers map[string]string `yaml:"headers"`
}

// EndpointConfig declares a dedicated endpoint for one tool.
type EndpointConfig struct {
	// URL is the absolute endpoint URL.
	URL string `yaml:"url"`
	// Mode is backend or webhook. Empty infers it from the URL.
	Mode string `yaml:"mode"`
	// Headers adds HTTP headers.
	Headers map[string]string `yaml:"headers"`
}
