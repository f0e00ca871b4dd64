package constants

// MCP transports.
const (
	TransportHTTP  = "http"
	TransportStdio = "stdio"
)

// Execution outcomes used in logs, audit events and metrics.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
	OutcomeRejected = "rejected"
)

// Rejection reasons.
const (
	ReasonInvalidInput = "invalid_input"
	ReasonRateLimited  = "rate_limited"
)

// Audit event types.
const (
	EventToolCall     = "tool_call"
	EventToolOK       = "tool_ok"
	EventToolFailure  = "tool_failure"
	EventToolFallback = "tool_fallback"
	EventToolRejected = "tool_rejected"
	EventToolError    = "tool_error"
)
