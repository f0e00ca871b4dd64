package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusUsesProvidedRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := NewPrometheus(registry)
	m.ObserveExecution("trend-impact-analysis", "fallback", 2*time.Second)
	m.ObserveExecution("trend-impact-analysis", "fallback", time.Second)
	m.ObserveRejection("legacy-creative", "rate_limited")

	families, err := registry.Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, family := range families {
		byName[family.GetName()] = family
	}

	require.Contains(t, byName, "ai_tools_executions_total")
	require.Contains(t, byName, "ai_tools_execution_duration_seconds")
	require.Contains(t, byName, "ai_tools_rejections_total")

	executions := byName["ai_tools_executions_total"].GetMetric()
	require.Len(t, executions, 1)
	assert.Equal(t, float64(2), executions[0].GetCounter().GetValue())

	histogram := byName["ai_tools_execution_duration_seconds"].GetMetric()[0].GetHistogram()
	assert.Equal(t, uint64(2), histogram.GetSampleCount())
	assert.InDelta(t, 3.0, histogram.GetSampleSum(), 0.001)
}

func TestImplementations(t *testing.T) {
	var _ Recorder = (*Prometheus)(nil)
	var _ Recorder = Noop{}

	assert.NotPanics(t, func() {
		Noop{}.ObserveExecution("legacy-creative", "success", time.Second)
		Noop{}.ObserveRejection("legacy-creative", "invalid_input")
	})
}
