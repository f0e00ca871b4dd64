package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder observes tool executions.
type Recorder interface {
	// ObserveExecution records a finished execution and its outcome.
	ObserveExecution(tool, outcome string, duration time.Duration)
	// ObserveRejection records a submission refused before execution.
	ObserveRejection(tool, reason string)
}

// Prometheus exports execution metrics.
type Prometheus struct {
	executions *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	rejections *prometheus.CounterVec
}

// NewPrometheus registers the execution metrics with registerer. A nil
// registerer uses the default one.
func NewPrometheus(registerer prometheus.Registerer) *Prometheus {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &Prometheus{
		executions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ai_tools_executions_total",
				Help: "Total number of tool executions by outcome",
			},
			[]string{"tool", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ai_tools_execution_duration_seconds",
				Help:    "Duration of tool executions in seconds",
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"tool", "outcome"},
		),
		rejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ai_tools_rejections_total",
				Help: "Total number of tool submissions rejected before execution",
			},
			[]string{"tool", "reason"},
		),
	}
}

// ObserveExecution records a finished execution.
func (p *Prometheus) ObserveExecution(tool, outcome string, duration time.Duration) {
	p.executions.WithLabelValues(tool, outcome).Inc()
	p.duration.WithLabelValues(tool, outcome).Observe(duration.Seconds())
}

// ObserveRejection records a rejected submission.
func (p *Prometheus) ObserveRejection(tool, reason string) {
	p.rejections.WithLabelValues(tool, reason).Inc()
}

// Noop discards all observations.
type Noop struct{}

// ObserveExecution ignores the execution.
func (Noop) ObserveExecution(string, string, time.Duration) {}

// ObserveRejection ignores the rejection.
func (Noop) ObserveRejection(string, string) {}
