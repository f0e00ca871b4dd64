package dsl

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codex-k8s/ai-tools/internal/endpoint"
)

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load([]byte(`
server:
  name: ai-tools
  version: 0.1.0
  rate_limit:
    rate_per_minute: 12
`))
	require.NoError(t, err)
	require.Equal(t, "http", cfg.Server.Transport)
	require.Equal(t, ":8080", cfg.Server.HTTP.Listen)
	require.Equal(t, "/mcp", cfg.Server.HTTP.Path)
	require.Equal(t, 12, cfg.Server.RateLimit.Burst)
	require.Equal(t, DefaultBaseURL, cfg.Backend.BaseURL)
	require.Equal(t, endpoint.DefaultExecutePath, cfg.Backend.ExecutePath)
}

func TestLoadResolvesEndpointModes(t *testing.T) {
	cfg, err := Load([]byte(`
server:
  name: ai-tools
  version: 0.1.0
endpoints:
  trend-impact-analysis:
    url: https://n8n.example.com/webhook/trend
  legacy-creative:
    url: https://n8n.example.com/webhook/legacy
    mode: backend
  professional-map:
    url: https://api.example.com/career
    mode: Webhook
`))
	require.NoError(t, err)
	require.Equal(t, "webhook", cfg.Endpoints["trend-impact-analysis"].Mode)
	require.Equal(t, "backend", cfg.Endpoints["legacy-creative"].Mode)
	require.Equal(t, "webhook", cfg.Endpoints["professional-map"].Mode)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	cases := map[string]string{
		"unknown field": `
server:
  name: ai-tools
  version: 0.1.0
  colour: blue
`,
		"missing name": `
server:
  version: 0.1.0
`,
		"bad transport": `
server:
  name: ai-tools
  version: 0.1.0
  transport: grpc
`,
		"unknown tool": `
server:
  name: ai-tools
  version: 0.1.0
endpoints:
  horoscope:
    url: https://api.example.com/horoscope
`,
		"relative url": `
server:
  name: ai-tools
  version: 0.1.0
endpoints:
  legacy-creative:
    url: /webhook/legacy
`,
		"bad mode": `
server:
  name: ai-tools
  version: 0.1.0
endpoints:
  legacy-creative:
    url: https://api.example.com/legacy
    mode: grpc
`,
		"bad duration": `
server:
  name: ai-tools
  version: 0.1.0
  http:
    read_timeout: soon
`,
		"negative rate": `
server:
  name: ai-tools
  version: 0.1.0
  rate_limit:
    rate_per_minute: -1
`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load([]byte(raw))
			require.Error(t, err)
		})
	}
}

func TestValidateErrorNamesField(t *testing.T) {
	cfg := &Config{
		Server:  ServerConfig{Name: "ai-tools", Version: "0.1.0"},
		Backend: BackendConfig{BaseURL: "localhost"},
	}
	require.EqualError(t, Validate(cfg), "backend.base_url is invalid: url must be absolute")
	require.EqualError(t, Validate(nil), "config is nil")
}
