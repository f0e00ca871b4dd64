package guard

import (
	"context"
	"fmt"

	"github.com/codex-k8s/ai-tools/internal/constants"
)

// Rejection codes, reported as the rejection reason in metrics.
const (
	CodeInvalidInput = constants.ReasonInvalidInput
	CodeRateLimited  = constants.ReasonRateLimited
)

// Request defines the input checked by guards.
type Request struct {
	// ToolName is the tool being executed.
	ToolName string
	// Inputs are the submitted form fields.
	Inputs map[string]string
	// CorrelationID links related log lines and audit events.
	CorrelationID string
}

// Decision represents a guard decision.
type Decision struct {
	// Allowed indicates whether execution may proceed.
	Allowed bool
	// Reason explains the decision.
	Reason string
	// Source identifies the guard.
	Source string
	// Code classifies a rejection.
	Code string
	// Fields maps rejected input fields to messages.
	Fields map[string]string
}

// Guard checks whether a submission may be executed.
type Guard interface {
	// Name returns the guard identifier.
	Name() string
	// Check returns a decision for the given request.
	Check(ctx context.Context, req Request) (Decision, error)
}

// Chain runs guards sequentially until one rejects.
type Chain struct {
	// Guards is the ordered list to execute.
	Guards []Guard
}

// Check executes all guards in order.
func (c Chain) Check(ctx context.Context, req Request) (Decision, error) {
	for _, item := range c.Guards {
		decision, err := item.Check(ctx, req)
		if err != nil {
			return Decision{Allowed: false, Reason: err.Error(), Source: item.Name()}, err
		}
		if !decision.Allowed {
			if decision.Source == "" {
				decision.Source = item.Name()
			}
			return decision, nil
		}
	}
	return Decision{Allowed: true, Reason: "allowed"}, nil
}

// RejectedError is returned when a guard refuses a submission.
type RejectedError struct {
	// Tool is the requested tool name.
	Tool string
	// Decision is the rejecting decision.
	Decision Decision
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s rejected by %s: %s", e.Tool, e.Decision.Source, e.Decision.Reason)
}
