package inputs

import (
	"context"
	"errors"

	"github.com/codex-k8s/ai-tools/internal/runtime/guard"
	"github.com/codex-k8s/ai-tools/internal/templates"
	"github.com/codex-k8s/ai-tools/internal/tool"
)

// Validator checks an input bag for a tool.
type Validator interface {
	// Validate returns a *tool.ValidationError when inputs are invalid.
	Validate(name string, inputs map[string]string) error
}

// Guard rejects submissions whose inputs fail the tool form rules.
type Guard struct {
	validator Validator
	renderer  templates.Renderer
}

// New returns an input validation guard.
func New(validator Validator, renderer templates.Renderer) *Guard {
	return &Guard{validator: validator, renderer: renderer}
}

// Name returns the guard name.
func (g *Guard) Name() string {
	return "inputs"
}

// Check validates the request inputs.
func (g *Guard) Check(_ context.Context, req guard.Request) (guard.Decision, error) {
	err := g.validator.Validate(req.ToolName, req.Inputs)
	if err == nil {
		return guard.Decision{Allowed: true, Source: g.Name()}, nil
	}
	var verr *tool.ValidationError
	if !errors.As(err, &verr) {
		return guard.Decision{}, err
	}
	reason := templates.Message(g.renderer, templates.KeyValidation, map[string]any{"Tool": req.ToolName}, verr.Error())
	return guard.Decision{
		Allowed: false,
		Reason:  reason,
		Source:  g.Name(),
		Code:    guard.CodeInvalidInput,
		Fields:  verr.Fields,
	}, nil
}
