package executor

import (
	"errors"
	"fmt"
)

// ErrToolNotFound matches failures for tools without fallback content.
var ErrToolNotFound = errors.New("tool not found")

// ToolNotFoundError reports an upstream failure for a tool that has no
// fallback payload. It unwraps to both ErrToolNotFound and the original
// failure.
type ToolNotFoundError struct {
	// Tool is the requested tool name.
	Tool string
	// Err is the original upstream failure.
	Err error
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("tool %s not found: %v", e.Tool, e.Err)
}

func (e *ToolNotFoundError) Unwrap() []error {
	return []error{ErrToolNotFound, e.Err}
}

// UpstreamError is a non-2xx response from the generation service.
type UpstreamError struct {
	// Status is the HTTP status code.
	Status int
	// Message is the upstream message or a generic one.
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("executor status %d: %s", e.Status, e.Message)
}

// MalformedResponseError is a 2xx response whose body is not usable JSON.
type MalformedResponseError struct {
	// Err is the decoding failure.
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed executor response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
