package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/codex-k8s/ai-tools/internal/protocol"
	"github.com/codex-k8s/ai-tools/internal/runtime"
	"github.com/codex-k8s/ai-tools/internal/runtime/executor"
	"github.com/codex-k8s/ai-tools/internal/runtime/guard"
	"github.com/codex-k8s/ai-tools/internal/templates"
	"github.com/codex-k8s/ai-tools/internal/tool"
)

type stubRunner struct {
	result protocol.ExecutionResult
	err    error
	calls  []runtime.Call
}

func (s *stubRunner) Catalog() []tool.Info {
	return tool.CatalogFor("llama-3")
}

func (s *stubRunner) Run(_ context.Context, call runtime.Call) (protocol.ExecutionResult, error) {
	s.calls = append(s.calls, call)
	return s.result, s.err
}

func newTestServer(t *testing.T, runner Runner) http.Handler {
	t.Helper()
	bundle, err := templates.Load("pt")
	require.NoError(t, err)
	root := chi.NewRouter()
	root.Mount("/api", NewRouter(NewHandler(runner, bundle, nil)))
	return root
}

func do(t *testing.T, handler http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestListTools(t *testing.T) {
	rec, body := do(t, newTestServer(t, &stubRunner{}), http.MethodGet, "/api/tools", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, map[string]any{"total": float64(6)}, body["meta"])
	require.Len(t, body["data"], 6)
	first, ok := body["data"].([]any)[0].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "llama-3", first["model"])
}

func TestGetTool(t *testing.T) {
	server := newTestServer(t, &stubRunner{})

	rec, body := do(t, server, http.MethodGet, "/api/tools/legacy-creative", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "legacy-creative", body["name"])
	require.Equal(t, "llama-3", body["model"])

	rec, body = do(t, server, http.MethodGet, "/api/tools/horoscope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Tool horoscope não encontrada", body["message"])
}

func TestExecuteToolReturnsResult(t *testing.T) {
	runner := &stubRunner{result: protocol.ExecutionResult{
		Success:  true,
		Data:     json.RawMessage(`{"titulo":"Manifesto"}`),
		Metadata: &protocol.Metadata{ToolName: "reinvention-manifesto", Model: "m", ExecutionTimeMs: 12},
	}}

	rec, body := do(t, newTestServer(t, runner), http.MethodPost, "/api/tools/reinvention-manifesto/execute",
		`{"continuar":"aprender sempre","parar":"procrastinar"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, body["success"])
	require.Equal(t, map[string]any{"titulo": "Manifesto"}, body["data"])

	require.Len(t, runner.calls, 1)
	require.Equal(t, "reinvention-manifesto", runner.calls[0].ToolName)
	require.Equal(t, map[string]string{"continuar": "aprender sempre", "parar": "procrastinar"}, runner.calls[0].Inputs)
	require.NotEmpty(t, runner.calls[0].CorrelationID)
}

func TestExecuteToolPassesFailureVariant(t *testing.T) {
	runner := &stubRunner{result: protocol.Failed("quota exceeded")}

	rec, body := do(t, newTestServer(t, runner), http.MethodPost, "/api/tools/legacy-creative/execute", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, false, body["success"])
	require.Equal(t, "quota exceeded", body["error"])
}

func TestExecuteToolRejectsInvalidBody(t *testing.T) {
	runner := &stubRunner{}
	server := newTestServer(t, runner)

	for _, payload := range []string{`not json`, `{"formato": 3}`, `["a"]`} {
		rec, body := do(t, server, http.MethodPost, "/api/tools/legacy-creative/execute", payload)
		require.Equal(t, http.StatusBadRequest, rec.Code, payload)
		require.Equal(t, "Corpo da requisição inválido", body["message"])
	}
	require.Empty(t, runner.calls)
}

func TestExecuteToolErrorStatuses(t *testing.T) {
	cases := map[string]struct {
		err     error
		status  int
		message string
	}{
		"invalid input": {
			err: &guard.RejectedError{Tool: "legacy-creative", Decision: guard.Decision{
				Reason: "Campos inválidos", Code: guard.CodeInvalidInput, Fields: map[string]string{"formato": "curto"},
			}},
			status:  http.StatusUnprocessableEntity,
			message: "Campos inválidos",
		},
		"rate limited": {
			err:     &guard.RejectedError{Tool: "legacy-creative", Decision: guard.Decision{Reason: "Limite", Code: guard.CodeRateLimited}},
			status:  http.StatusTooManyRequests,
			message: "Limite",
		},
		"tool not found": {
			err:     &executor.ToolNotFoundError{Tool: "legacy-creative", Err: errors.New("connection refused")},
			status:  http.StatusNotFound,
			message: "Tool legacy-creative não encontrada",
		},
		"deadline": {
			err:     context.DeadlineExceeded,
			status:  http.StatusGatewayTimeout,
			message: "Execução cancelada",
		},
		"unexpected": {
			err:     errors.New("executor endpoints are not configured"),
			status:  http.StatusBadGateway,
			message: "Erro ao executar tool",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec, body := do(t, newTestServer(t, &stubRunner{err: tc.err}), http.MethodPost, "/api/tools/legacy-creative/execute", `{}`)
			require.Equal(t, tc.status, rec.Code)
			require.Equal(t, tc.message, body["message"])
		})
	}
}

func TestExecuteToolReportsFieldErrors(t *testing.T) {
	runner := &stubRunner{err: &guard.RejectedError{Decision: guard.Decision{
		Code: guard.CodeInvalidInput, Reason: "invalid", Fields: map[string]string{"formato": "curto"},
	}}}

	_, body := do(t, newTestServer(t, runner), http.MethodPost, "/api/tools/legacy-creative/execute", `{}`)
	require.Equal(t, map[string]any{"formato": "curto"}, body["fields"])
}
