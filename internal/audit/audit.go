package audit

import (
	"context"
	"log/slog"
	"time"
)

// Event represents an audit entry for a tool execution.
type Event struct {
	// Type describes the event kind.
	Type string
	// Tool is the tool name.
	Tool string
	// CorrelationID links related events.
	CorrelationID string
	// Outcome is the execution outcome.
	Outcome string
	// Reason provides additional context.
	Reason string
	// Duration is the execution wall time.
	Duration time.Duration
}

// Logger records audit events.
type Logger interface {
	// Record stores an audit event.
	Record(ctx context.Context, event Event)
}

// StdLogger writes audit events to slog.
type StdLogger struct {
	logger *slog.Logger
}

// New returns a StdLogger.
func New(logger *slog.Logger) *StdLogger {
	return &StdLogger{logger: logger}
}

// Record logs an audit event.
func (l *StdLogger) Record(ctx context.Context, event Event) {
	if l == nil || l.logger == nil {
		return
	}
	attrs := []any{
		"type", event.Type,
		"tool", event.Tool,
		"correlation_id", event.CorrelationID,
	}
	if event.Outcome != "" {
		attrs = append(attrs, "outcome", event.Outcome)
	}
	if event.Reason != "" {
		attrs = append(attrs, "reason", event.Reason)
	}
	if event.Duration > 0 {
		attrs = append(attrs, "duration_ms", event.Duration.Milliseconds())
	}
	l.logger.InfoContext(ctx, "audit", attrs...)
}
