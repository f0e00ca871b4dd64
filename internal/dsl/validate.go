package dsl

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/codex-k8s/ai-tools/internal/constants"
	"github.com/codex-k8s/ai-tools/internal/endpoint"
	"github.com/codex-k8s/ai-tools/internal/tool"
)

// DefaultBaseURL is used when backend.base_url is empty.
const DefaultBaseURL = "http://localhost:3000"

// Validate applies defaults and verifies required fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.Server.Name == "" {
		return fmt.Errorf("server.name is required")
	}
	if cfg.Server.Version == "" {
		return fmt.Errorf("server.version is required")
	}
	cfg.Server.Transport = strings.ToLower(strings.TrimSpace(cfg.Server.Transport))
	switch cfg.Server.Transport {
	case "":
		cfg.Server.Transport = constants.TransportHTTP
	case constants.TransportHTTP, constants.TransportStdio:
	default:
		return fmt.Errorf("server.transport must be http or stdio")
	}
	if strings.TrimSpace(cfg.Server.HTTP.Listen) == "" {
		cfg.Server.HTTP.Listen = ":8080"
	}
	if cfg.Server.HTTP.Path == "" {
		cfg.Server.HTTP.Path = "/mcp"
	}
	if !strings.HasPrefix(cfg.Server.HTTP.Path, "/") {
		return fmt.Errorf("server.http.path must start with /")
	}
	durations := map[string]string{
		"server.shutdown_timeout":   cfg.Server.ShutdownTimeout,
		"server.http.read_timeout":  cfg.Server.HTTP.ReadTimeout,
		"server.http.write_timeout": cfg.Server.HTTP.WriteTimeout,
		"server.http.idle_timeout":  cfg.Server.HTTP.IdleTimeout,
		"backend.timeout":           cfg.Backend.Timeout,
	}
	for _, field := range sortedKeys(durations) {
		if err := checkDuration(durations[field]); err != nil {
			return fmt.Errorf("%s is invalid: %w", field, err)
		}
	}
	if cfg.Server.RateLimit.RatePerMinute < 0 {
		return fmt.Errorf("server.rate_limit.rate_per_minute must be >= 0")
	}
	if cfg.Server.RateLimit.Burst < 0 {
		return fmt.Errorf("server.rate_limit.burst must be >= 0")
	}
	if cfg.Server.RateLimit.Burst == 0 {
		cfg.Server.RateLimit.Burst = cfg.Server.RateLimit.RatePerMinute
	}

	if strings.TrimSpace(cfg.Backend.BaseURL) == "" {
		cfg.Backend.BaseURL = DefaultBaseURL
	}
	if _, err := ParseAbsoluteURL(cfg.Backend.BaseURL); err != nil {
		return fmt.Errorf("backend.base_url is invalid: %w", err)
	}
	if cfg.Backend.ExecutePath == "" {
		cfg.Backend.ExecutePath = endpoint.DefaultExecutePath
	}

	for _, name := range sortedKeys(cfg.Endpoints) {
		ep := cfg.Endpoints[name]
		if _, ok := tool.Parse(name); !ok {
			return fmt.Errorf("endpoints.%s: unknown tool", name)
		}
		if _, err := ParseAbsoluteURL(ep.URL); err != nil {
			return fmt.Errorf("endpoints.%s.url is invalid: %w", name, err)
		}
		mode, err := ResolveMode(ep.Mode, ep.URL)
		if err != nil {
			return fmt.Errorf("endpoints.%s.mode: %w", name, err)
		}
		ep.Mode = string(mode)
		cfg.Endpoints[name] = ep
	}

	return nil
}

// ResolveMode parses a configured mode, inferring it from rawURL when blank.
func ResolveMode(raw, rawURL string) (endpoint.Mode, error) {
	mode, err := endpoint.ParseMode(raw)
	if err != nil {
		return "", err
	}
	if mode == "" {
		mode = endpoint.InferMode(rawURL)
	}
	return mode, nil
}

// ParseAbsoluteURL parses raw and requires a scheme and host.
func ParseAbsoluteURL(raw string) (*url.URL, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, err
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("url must be absolute")
	}
	return parsed, nil
}

func checkDuration(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return err
	}
	if d < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
