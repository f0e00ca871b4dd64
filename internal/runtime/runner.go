package runtime

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/codex-k8s/ai-tools/internal/audit"
	"github.com/codex-k8s/ai-tools/internal/constants"
	"github.com/codex-k8s/ai-tools/internal/metrics"
	"github.com/codex-k8s/ai-tools/internal/protocol"
	"github.com/codex-k8s/ai-tools/internal/runtime/executor"
	"github.com/codex-k8s/ai-tools/internal/runtime/guard"
	"github.com/codex-k8s/ai-tools/internal/security"
	"github.com/codex-k8s/ai-tools/internal/tool"
)

// Call is a single tool submission.
type Call struct {
	// ToolName is the requested tool.
	ToolName string
	// Inputs are the submitted form fields.
	Inputs map[string]string
	// CorrelationID links log lines and audit events. Generated when empty.
	CorrelationID string
}

// Runner checks submissions against the guard chain and executes them.
type Runner struct {
	// Executor performs the upstream call.
	Executor executor.Executor
	// Model is the generation model sent to the default backend.
	Model string
	// Guards run before execution.
	Guards guard.Chain
	// Logger is used for structured logging.
	Logger *slog.Logger
	// Audit records tool events.
	Audit audit.Logger
	// Metrics observes outcomes.
	Metrics metrics.Recorder
}

// Catalog lists the tools with the model they are requested with.
func (r *Runner) Catalog() []tool.Info {
	return tool.CatalogFor(r.Model)
}

// Run executes call. Guard rejections are returned as *guard.RejectedError.
func (r *Runner) Run(ctx context.Context, call Call) (protocol.ExecutionResult, error) {
	if call.CorrelationID == "" {
		call.CorrelationID = uuid.NewString()
	}
	started := time.Now()

	r.logger().InfoContext(ctx, "tool call",
		"tool", call.ToolName,
		"correlation_id", call.CorrelationID,
		"inputs", security.RedactInputs(call.Inputs, security.DefaultMaxValueLength),
	)
	r.record(ctx, audit.Event{Type: constants.EventToolCall, Tool: call.ToolName, CorrelationID: call.CorrelationID})

	decision, err := r.Guards.Check(ctx, guard.Request{
		ToolName:      call.ToolName,
		Inputs:        call.Inputs,
		CorrelationID: call.CorrelationID,
	})
	if err != nil {
		r.fail(ctx, call, started, err)
		return protocol.ExecutionResult{}, err
	}
	if !decision.Allowed {
		r.recorder().ObserveRejection(call.ToolName, decision.Code)
		r.record(ctx, audit.Event{
			Type:          constants.EventToolRejected,
			Tool:          call.ToolName,
			CorrelationID: call.CorrelationID,
			Outcome:       constants.OutcomeRejected,
			Reason:        decision.Reason,
		})
		return protocol.ExecutionResult{}, &guard.RejectedError{Tool: call.ToolName, Decision: decision}
	}

	result, err := r.Executor.Execute(ctx, executor.Request{
		ToolName:      call.ToolName,
		Inputs:        call.Inputs,
		CorrelationID: call.CorrelationID,
	})
	if err != nil {
		r.fail(ctx, call, started, err)
		return protocol.ExecutionResult{}, err
	}

	duration := time.Since(started)
	outcome, eventType := classify(result)
	r.recorder().ObserveExecution(call.ToolName, outcome, duration)
	r.record(ctx, audit.Event{
		Type:          eventType,
		Tool:          call.ToolName,
		CorrelationID: call.CorrelationID,
		Outcome:       outcome,
		Reason:        result.Error,
		Duration:      duration,
	})
	r.logger().InfoContext(ctx, "tool done",
		"tool", call.ToolName,
		"correlation_id", call.CorrelationID,
		"outcome", outcome,
		"duration_ms", duration.Milliseconds(),
	)
	return result, nil
}

func (r *Runner) fail(ctx context.Context, call Call, started time.Time, err error) {
	duration := time.Since(started)
	r.recorder().ObserveExecution(call.ToolName, constants.OutcomeError, duration)
	r.record(ctx, audit.Event{
		Type:          constants.EventToolError,
		Tool:          call.ToolName,
		CorrelationID: call.CorrelationID,
		Outcome:       constants.OutcomeError,
		Reason:        err.Error(),
		Duration:      duration,
	})
	level := slog.LevelError
	if errors.Is(err, context.Canceled) {
		level = slog.LevelWarn
	}
	r.logger().Log(ctx, level, "tool failed",
		"tool", call.ToolName,
		"correlation_id", call.CorrelationID,
		"error", err,
	)
}

func classify(result protocol.ExecutionResult) (string, string) {
	switch {
	case !result.Success:
		return constants.OutcomeFailure, constants.EventToolFailure
	case result.Metadata != nil && result.Metadata.Fallback:
		return constants.OutcomeFallback, constants.EventToolFallback
	default:
		return constants.OutcomeSuccess, constants.EventToolOK
	}
}

func (r *Runner) record(ctx context.Context, event audit.Event) {
	if r.Audit != nil {
		r.Audit.Record(ctx, event)
	}
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}

func (r *Runner) recorder() metrics.Recorder {
	if r.Metrics == nil {
		return metrics.Noop{}
	}
	return r.Metrics
}
