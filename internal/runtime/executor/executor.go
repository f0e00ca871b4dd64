package executor

import (
	"context"

	"github.com/codex-k8s/ai-tools/internal/protocol"
)

// Request contains tool execution inputs.
type Request struct {
	// ToolName is the tool being executed.
	ToolName string
	// Inputs are the submitted form fields.
	Inputs map[string]string
	// CorrelationID links related log lines and audit events.
	CorrelationID string
}

// Executor executes a tool and returns its result.
type Executor interface {
	// Execute runs the tool and returns a result. Only unknown tools and
	// caller cancellation surface as errors.
	Execute(ctx context.Context, req Request) (protocol.ExecutionResult, error)
}
