package runtime

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/codex-k8s/ai-tools/internal/config"
	"github.com/codex-k8s/ai-tools/internal/tool"
)

func connectClient(t *testing.T, ctx context.Context, server *mcp.Server) *mcp.ClientSession {
	t.Helper()
	ct, st := mcp.NewInMemoryTransports()
	_, err := server.Connect(ctx, st, nil)
	require.NoError(t, err)

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "0.1.0"}, nil)
	session, err := client.Connect(ctx, ct, nil)
	require.NoError(t, err)
	return session
}

func newMCPServer(t *testing.T, backendURL string, rateYAML string) *mcp.Server {
	t.Helper()
	cfg := loadDSL(t, `
server:
  name: ai-tools
  version: 0.1.0
`+rateYAML+`
backend:
  base_url: `+backendURL+`
`)
	runner, err := NewRunner(Options{DSL: cfg, Env: config.Config{}})
	require.NoError(t, err)

	server, err := Builder{Runner: runner}.Build(cfg)
	require.NoError(t, err)
	return server
}

func TestBuildListsEveryTool(t *testing.T) {
	ctx := context.Background()
	session := connectClient(t, ctx, newMCPServer(t, "http://localhost:3000", ""))
	defer session.Close()

	res, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.Len(t, res.Tools, len(tool.All()))

	names := make([]string, 0, len(res.Tools))
	for _, item := range res.Tools {
		names = append(names, item.Name)
	}
	for _, id := range tool.All() {
		require.Contains(t, names, string(id))
	}
}

func TestCallToolExecutesThroughBackend(t *testing.T) {
	requests := make(chan map[string]any, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		requests <- body
		_, _ = io.WriteString(w, `{"success": true, "data": {"setores_mais_impactados": ["Saúde"]}, "metadata": {"toolName": "trend-impact-analysis", "model": "m", "executionTimeMs": 10}}`)
	}))
	defer srv.Close()

	ctx := context.Background()
	session := connectClient(t, ctx, newMCPServer(t, srv.URL, ""))
	defer session.Close()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "trend-impact-analysis",
		Arguments: map[string]any{"tendencia_emergente": "IA Generativa"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Equal(t, "trend-impact-analysis", (<-requests)["toolName"])

	structured, ok := res.StructuredContent.(map[string]any)
	require.True(t, ok)
	require.Equal(t, true, structured["success"])
	require.Equal(t, map[string]any{"setores_mais_impactados": []any{"Saúde"}}, structured["data"])
}

func TestCallToolReportsRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"success": true, "data": {}}`)
	}))
	defer srv.Close()

	ctx := context.Background()
	session := connectClient(t, ctx, newMCPServer(t, srv.URL, `  rate_limit:
    rate_per_minute: 1
    burst: 1
`))
	defer session.Close()

	params := &mcp.CallToolParams{
		Name:      "legacy-creative",
		Arguments: map[string]any{"aprendizados": "Dez anos de engenharia", "formato": "podcast"},
	}
	first, err := session.CallTool(ctx, params)
	require.NoError(t, err)
	require.False(t, first.IsError)

	second, err := session.CallTool(ctx, params)
	require.True(t, err != nil || second.IsError)
}
