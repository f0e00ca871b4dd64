package endpoint

import (
	"fmt"
	"net/url"
	"strings"
)

// Mode selects the request body shape for an endpoint.
type Mode string

// Transport modes.
const (
	// ModeBackend wraps inputs as {toolName, inputs, model}.
	ModeBackend Mode = "backend"
	// ModeWebhook sends the input bag verbatim.
	ModeWebhook Mode = "webhook"
)

// DefaultExecutePath is appended to the backend base URL.
const DefaultExecutePath = "/api/ai-tools/execute"

// ParseMode parses a configured mode. An empty value returns an empty Mode.
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return "", nil
	case ModeBackend:
		return ModeBackend, nil
	case ModeWebhook:
		return ModeWebhook, nil
	default:
		return "", fmt.Errorf("unknown endpoint mode %q (want backend or webhook)", raw)
	}
}

// InferMode guesses the mode of an endpoint whose mode was left blank.
// Automation webhooks (n8n style) expose /webhook/ or /webhook-test/ paths.
func InferMode(rawURL string) Mode {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ModeBackend
	}
	for _, segment := range strings.Split(parsed.Path, "/") {
		switch strings.ToLower(segment) {
		case "webhook", "webhook-test":
			return ModeWebhook
		}
	}
	return ModeBackend
}

// Endpoint is a resolved request target.
type Endpoint struct {
	// URL is the absolute endpoint URL.
	URL string
	// Mode selects the request body shape.
	Mode Mode
	// Headers adds HTTP headers to every request.
	Headers map[string]string
}

// DefaultBackend returns the backend execute endpoint under baseURL.
func DefaultBackend(baseURL, executePath string) Endpoint {
	if strings.TrimSpace(executePath) == "" {
		executePath = DefaultExecutePath
	}
	if !strings.HasPrefix(executePath, "/") {
		executePath = "/" + executePath
	}
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	return Endpoint{URL: base + executePath, Mode: ModeBackend}
}

// Table maps tool identifiers to endpoints. It is immutable once built.
type Table struct {
	dedicated map[string]Endpoint
	fallback  Endpoint
}

// NewTable builds a table with dedicated endpoints and a default endpoint
// used for every other tool.
func NewTable(fallback Endpoint, dedicated map[string]Endpoint) *Table {
	copied := make(map[string]Endpoint, len(dedicated))
	for name, ep := range dedicated {
		if ep.Mode == "" {
			ep.Mode = ModeBackend
		}
		copied[name] = ep
	}
	if fallback.Mode == "" {
		fallback.Mode = ModeBackend
	}
	return &Table{dedicated: copied, fallback: fallback}
}

// Resolve returns the endpoint for toolName and whether it is dedicated.
func (t *Table) Resolve(toolName string) (Endpoint, bool) {
	if ep, ok := t.dedicated[toolName]; ok {
		return ep, true
	}
	return t.fallback, false
}

// Default returns the endpoint used for tools without a dedicated one.
func (t *Table) Default() Endpoint {
	return t.fallback
}
