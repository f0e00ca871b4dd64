package inputs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codex-k8s/ai-tools/internal/runtime/guard"
	"github.com/codex-k8s/ai-tools/internal/templates"
	"github.com/codex-k8s/ai-tools/internal/tool"
)

func TestGuardRejectsShortInputs(t *testing.T) {
	validator, err := tool.NewValidator()
	require.NoError(t, err)
	bundle, err := templates.Load("pt")
	require.NoError(t, err)

	g := New(validator, bundle)
	decision, err := g.Check(context.Background(), guard.Request{
		ToolName: string(tool.TrendImpactAnalysis),
		Inputs:   map[string]string{"tendencia_emergente": "IA"},
	})
	require.NoError(t, err)
	require.False(t, decision.Allowed)
	require.Equal(t, guard.CodeInvalidInput, decision.Code)
	require.Equal(t, "Campos inválidos para trend-impact-analysis", decision.Reason)
	require.Contains(t, decision.Fields, "tendencia_emergente")
}

func TestGuardAllowsValidInputs(t *testing.T) {
	validator, err := tool.NewValidator()
	require.NoError(t, err)

	g := New(validator, nil)
	decision, err := g.Check(context.Background(), guard.Request{
		ToolName: string(tool.TrendImpactAnalysis),
		Inputs:   map[string]string{"tendencia_emergente": "IA Generativa"},
	})
	require.NoError(t, err)
	require.True(t, decision.Allowed)
}

type brokenValidator struct{}

func (brokenValidator) Validate(string, map[string]string) error {
	return errors.New("schema unavailable")
}

func TestGuardPropagatesUnexpectedErrors(t *testing.T) {
	_, err := New(brokenValidator{}, nil).Check(context.Background(), guard.Request{ToolName: "legacy-creative"})
	require.EqualError(t, err, "schema unavailable")
}
