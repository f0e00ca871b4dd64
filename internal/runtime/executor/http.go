package executor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/codex-k8s/ai-tools/internal/constants"
	"github.com/codex-k8s/ai-tools/internal/endpoint"
	"github.com/codex-k8s/ai-tools/internal/protocol"
	"github.com/codex-k8s/ai-tools/internal/templates"
	"github.com/codex-k8s/ai-tools/internal/tool"
)

const (
	// DefaultFallbackModel labels results fabricated after an upstream failure.
	DefaultFallbackModel = "nvidia/nemtron-nano-12b-vl:free"
	// DefaultFallbackDelay is the pause before a fabricated result is returned.
	DefaultFallbackDelay = 2 * time.Second
	// TracerName is the instrumentation scope of execution spans.
	TracerName = "github.com/codex-k8s/ai-tools/internal/runtime/executor"

	genericErrorMessage = "Erro ao executar tool"
	maxResponseBytes    = 1 << 20
)

// Resolver maps a tool name to its endpoint.
type Resolver interface {
	// Resolve returns the endpoint for toolName and whether it is dedicated.
	Resolve(toolName string) (endpoint.Endpoint, bool)
}

// HTTP calls the generation service and substitutes fabricated content when
// the call fails.
type HTTP struct {
	// Endpoints resolves the request target per tool.
	Endpoints Resolver
	// Client overrides the HTTP client.
	Client *http.Client
	// Timeout is the HTTP client timeout. Zero means no timeout.
	Timeout time.Duration
	// Model is sent to the default backend.
	Model string
	// FallbackModel labels fabricated results.
	FallbackModel string
	// FallbackDelay is the pause before a fabricated result is returned.
	FallbackDelay time.Duration
	// Messages renders localized error messages.
	Messages templates.Renderer
	// Logger receives upstream failures.
	Logger *slog.Logger
	// Tracer creates execution spans.
	Tracer trace.Tracer
}

// Execute sends the inputs to the endpoint resolved for the tool. Upstream
// failures for known tools are replaced with a fabricated success result.
func (h HTTP) Execute(ctx context.Context, req Request) (protocol.ExecutionResult, error) {
	started := time.Now()
	ctx, span := h.tracer().Start(ctx, "ai_tools.execute", trace.WithAttributes(
		attribute.String("ai_tools.tool", req.ToolName),
		attribute.String("ai_tools.correlation_id", req.CorrelationID),
	))
	defer span.End()

	if h.Endpoints == nil {
		err := errors.New("executor endpoints are not configured")
		span.SetStatus(codes.Error, err.Error())
		return protocol.ExecutionResult{}, err
	}
	ep, dedicated := h.Endpoints.Resolve(req.ToolName)
	span.SetAttributes(
		attribute.String("ai_tools.mode", string(ep.Mode)),
		attribute.Bool("ai_tools.dedicated", dedicated),
	)

	result, callErr := h.call(ctx, ep, req, started)
	if callErr == nil {
		span.SetAttributes(attribute.String("ai_tools.outcome", outcomeOf(result)))
		return result, nil
	}
	span.RecordError(callErr)

	if ctxErr := ctx.Err(); ctxErr != nil {
		span.SetStatus(codes.Error, ctxErr.Error())
		return protocol.ExecutionResult{}, ctxErr
	}

	payload, ok := tool.Fabricate(req.ToolName, req.Inputs)
	if !ok {
		span.SetStatus(codes.Error, callErr.Error())
		return protocol.ExecutionResult{}, &ToolNotFoundError{Tool: req.ToolName, Err: callErr}
	}

	h.logger().Warn("executor call failed, using fallback",
		"tool", req.ToolName,
		"correlation_id", req.CorrelationID,
		"url", ep.URL,
		"error", callErr,
	)

	if err := h.wait(ctx); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return protocol.ExecutionResult{}, err
	}

	result, err := protocol.Succeeded(payload, protocol.Metadata{
		ToolName:        req.ToolName,
		Model:           h.fallbackModel(),
		ExecutionTimeMs: time.Since(started).Milliseconds(),
		Fallback:        true,
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return protocol.ExecutionResult{}, err
	}
	span.SetAttributes(attribute.String("ai_tools.outcome", constants.OutcomeFallback))
	return result, nil
}

func (h HTTP) call(ctx context.Context, ep endpoint.Endpoint, req Request, started time.Time) (protocol.ExecutionResult, error) {
	if strings.TrimSpace(ep.URL) == "" {
		return protocol.ExecutionResult{}, errors.New("executor url is empty")
	}

	body, err := h.encode(ep.Mode, req)
	if err != nil {
		return protocol.ExecutionResult{}, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, ep.URL, bytes.NewReader(body))
	if err != nil {
		return protocol.ExecutionResult{}, fmt.Errorf("failed to build request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	for key, value := range ep.Headers {
		request.Header.Set(key, value)
	}

	resp, err := h.client().Do(request)
	if err != nil {
		return protocol.ExecutionResult{}, fmt.Errorf("executor request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return protocol.ExecutionResult{}, fmt.Errorf("read executor response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return protocol.ExecutionResult{}, &UpstreamError{Status: resp.StatusCode, Message: h.errorMessage(data)}
	}

	return h.decode(data, req, started)
}

func (h HTTP) encode(mode endpoint.Mode, req Request) ([]byte, error) {
	inputs := req.Inputs
	if inputs == nil {
		inputs = map[string]string{}
	}
	var payload any = inputs
	if mode != endpoint.ModeWebhook {
		payload = protocol.ExecuteRequest{
			ToolName: req.ToolName,
			Inputs:   inputs,
			Model:    h.Model,
		}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	return body, nil
}

// envelope mirrors protocol.ExecutionResult. Replies that carry a success
// key must decode into it.
type envelope struct {
	Success  *bool              `json:"success"`
	Data     json.RawMessage    `json:"data"`
	Error    string             `json:"error"`
	Metadata *protocol.Metadata `json:"metadata"`
}

func (h HTTP) decode(data []byte, req Request, started time.Time) (protocol.ExecutionResult, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return protocol.ExecutionResult{}, &MalformedResponseError{Err: errors.New("empty body")}
	}
	if !json.Valid(data) {
		return protocol.ExecutionResult{}, &MalformedResponseError{Err: errors.New("invalid json")}
	}

	meta := protocol.Metadata{
		ToolName:        req.ToolName,
		Model:           h.Model,
		ExecutionTimeMs: time.Since(started).Milliseconds(),
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return protocol.ExecutionResult{Success: true, Data: json.RawMessage(data), Metadata: &meta}, nil
	}
	if _, ok := fields["success"]; !ok {
		return protocol.ExecutionResult{Success: true, Data: json.RawMessage(data), Metadata: &meta}, nil
	}

	var parsed envelope
	if err := json.Unmarshal(data, &parsed); err != nil {
		return protocol.ExecutionResult{}, &MalformedResponseError{Err: fmt.Errorf("decode envelope: %w", err)}
	}
	if parsed.Success == nil {
		return protocol.ExecutionResult{}, &MalformedResponseError{Err: errors.New("success is null")}
	}

	if !*parsed.Success {
		msg := strings.TrimSpace(parsed.Error)
		if msg == "" {
			msg = templates.Message(h.Messages, templates.KeyUpstreamError, nil, genericErrorMessage)
		}
		return protocol.Failed(msg), nil
	}

	if len(parsed.Data) == 0 || string(parsed.Data) == "null" {
		return protocol.ExecutionResult{}, &MalformedResponseError{Err: errors.New("success without data")}
	}
	if parsed.Metadata != nil {
		if parsed.Metadata.ToolName == "" {
			parsed.Metadata.ToolName = meta.ToolName
		}
		if parsed.Metadata.Model == "" {
			parsed.Metadata.Model = meta.Model
		}
		meta = *parsed.Metadata
	}
	return protocol.ExecutionResult{Success: true, Data: parsed.Data, Metadata: &meta}, nil
}

func (h HTTP) errorMessage(data []byte) string {
	var parsed protocol.ErrorResponse
	if err := json.Unmarshal(data, &parsed); err == nil {
		if msg := strings.TrimSpace(parsed.Message); msg != "" {
			return msg
		}
	}
	return templates.Message(h.Messages, templates.KeyUpstreamError, nil, genericErrorMessage)
}

func (h HTTP) wait(ctx context.Context) error {
	delay := h.FallbackDelay
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h HTTP) client() *http.Client {
	if h.Client != nil {
		return h.Client
	}
	return &http.Client{Timeout: h.Timeout}
}

func (h HTTP) fallbackModel() string {
	if strings.TrimSpace(h.FallbackModel) == "" {
		return DefaultFallbackModel
	}
	return h.FallbackModel
}

func (h HTTP) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return h.Logger
}

func (h HTTP) tracer() trace.Tracer {
	if h.Tracer == nil {
		return otel.Tracer(TracerName)
	}
	return h.Tracer
}

func outcomeOf(result protocol.ExecutionResult) string {
	if result.Success {
		return constants.OutcomeSuccess
	}
	return constants.OutcomeFailure
}
