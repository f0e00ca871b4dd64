package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ExecuteRequest is the envelope sent to the default generation backend.
type ExecuteRequest struct {
	// ToolName is the tool identifier.
	ToolName string `json:"toolName"`
	// Inputs are the submitted form fields.
	Inputs map[string]string `json:"inputs"`
	// Model is the preferred generation model.
	Model string `json:"model,omitempty"`
}

// Metadata describes how a result was produced.
type Metadata struct {
	// ToolName is the tool identifier.
	ToolName string `json:"toolName"`
	// Model is the model that produced the data.
	Model string `json:"model"`
	// ExecutionTimeMs is the wall time of the execution.
	ExecutionTimeMs int64 `json:"executionTimeMs"`
	// TokensUsed is reported by the backend when known.
	TokensUsed *int `json:"tokensUsed,omitempty"`
	// Fallback marks results fabricated locally after an upstream failure.
	Fallback bool `json:"fallback,omitempty"`
}

// ExecutionResult is either a success (Data and Metadata set) or a failure
// (Error set).
type ExecutionResult struct {
	// Success selects the populated variant.
	Success bool `json:"success"`
	// Data is the tool payload on success.
	Data json.RawMessage `json:"data,omitempty"`
	// Error is the failure message.
	Error string `json:"error,omitempty"`
	// Metadata is always present on success.
	Metadata *Metadata `json:"metadata,omitempty"`
}

// ErrorResponse is the error body returned by the backend on non-2xx status.
type ErrorResponse struct {
	// Message is a human-readable error.
	Message string `json:"message"`
}

// Succeeded builds a success result with the payload encoded as JSON.
func Succeeded(data any, meta Metadata) (ExecutionResult, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return ExecutionResult{}, fmt.Errorf("encode payload: %w", err)
	}
	return ExecutionResult{Success: true, Data: raw, Metadata: &meta}, nil
}

// Failed builds a failure result.
func Failed(message string) ExecutionResult {
	return ExecutionResult{Success: false, Error: message}
}

// DecodeData decodes the payload of a success result into T.
func DecodeData[T any](result ExecutionResult) (T, error) {
	var out T
	if !result.Success {
		return out, errors.New("result is not a success")
	}
	if len(result.Data) == 0 {
		return out, errors.New("result has no data")
	}
	if err := json.Unmarshal(result.Data, &out); err != nil {
		return out, fmt.Errorf("decode payload: %w", err)
	}
	return out, nil
}
