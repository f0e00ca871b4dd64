package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/codex-k8s/ai-tools/internal/protocol"
	"github.com/codex-k8s/ai-tools/internal/runtime"
	"github.com/codex-k8s/ai-tools/internal/runtime/executor"
	"github.com/codex-k8s/ai-tools/internal/runtime/guard"
	"github.com/codex-k8s/ai-tools/internal/templates"
	"github.com/codex-k8s/ai-tools/internal/tool"
)

const maxBodyBytes = 1 << 20

// Runner executes tool calls.
type Runner interface {
	// Run executes a single tool submission.
	Run(ctx context.Context, call runtime.Call) (protocol.ExecutionResult, error)
	// Catalog lists the tools in menu order.
	Catalog() []tool.Info
}

// Handler serves the tool catalog and executions.
type Handler struct {
	runner   Runner
	messages templates.Renderer
	logger   *slog.Logger
}

// NewHandler returns a Handler.
func NewHandler(runner Runner, messages templates.Renderer, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{runner: runner, messages: messages, logger: logger}
}

type errorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ListTools returns the catalog in menu order.
func (h *Handler) ListTools(w http.ResponseWriter, _ *http.Request) {
	items := h.runner.Catalog()
	writeJSON(w, http.StatusOK, map[string]any{"data": items, "meta": map[string]int{"total": len(items)}})
}

// GetTool returns one catalog entry.
func (h *Handler) GetTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "tool")
	for _, info := range h.runner.Catalog() {
		if string(info.Name) == name {
			writeJSON(w, http.StatusOK, info)
			return
		}
	}
	h.writeNotFound(w, name)
}

// ExecuteTool runs a tool with the input bag from the request body.
func (h *Handler) ExecuteTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "tool")

	var inputs map[string]string
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(&inputs); err != nil {
		writeError(w, http.StatusBadRequest, errorResponse{
			Message: templates.Message(h.messages, templates.KeyInvalidBody, nil, "invalid request body"),
		})
		return
	}

	result, err := h.runner.Run(r.Context(), runtime.Call{
		ToolName:      name,
		Inputs:        inputs,
		CorrelationID: middleware.GetReqID(r.Context()),
	})
	if err != nil {
		h.writeRunError(w, name, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) writeRunError(w http.ResponseWriter, name string, err error) {
	var rejected *guard.RejectedError
	switch {
	case errors.As(err, &rejected):
		status := http.StatusUnprocessableEntity
		if rejected.Decision.Code == guard.CodeRateLimited {
			status = http.StatusTooManyRequests
		}
		writeError(w, status, errorResponse{Message: rejected.Decision.Reason, Fields: rejected.Decision.Fields})
	case errors.Is(err, executor.ErrToolNotFound):
		h.writeNotFound(w, name)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, errorResponse{
			Message: templates.Message(h.messages, templates.KeyCanceled, nil, "execution canceled"),
		})
	default:
		h.logger.Error("tool execution failed", "tool", name, "error", err)
		writeError(w, http.StatusBadGateway, errorResponse{
			Message: templates.Message(h.messages, templates.KeyUpstreamError, nil, "Erro ao executar tool"),
		})
	}
}

func (h *Handler) writeNotFound(w http.ResponseWriter, name string) {
	writeError(w, http.StatusNotFound, errorResponse{
		Message: templates.Message(h.messages, templates.KeyToolNotFound, map[string]any{"Tool": name}, "tool not found"),
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, `{"message":"failed to encode response"}`, http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, statusCode int, body errorResponse) {
	writeJSON(w, statusCode, body)
}
