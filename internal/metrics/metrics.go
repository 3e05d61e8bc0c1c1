// Package metrics provides Prometheus instrumentation for property
// calculations.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder owns a private registry so several recorders can coexist in one
// process. It is safe for concurrent use.
type Recorder struct {
	registry *prometheus.Registry

	// BreakdownsTotal counts computed breakdowns, partitioned by payment plan.
	BreakdownsTotal *prometheus.CounterVec
	// ScenariosTotal counts evaluated exit scenarios.
	ScenariosTotal prometheus.Counter
	// BreakdownDuration tracks how long one breakdown takes.
	BreakdownDuration prometheus.Histogram
	// LastROI is the ROI of the most recent breakdown.
	LastROI prometheus.Gauge
}

// NewRecorder registers the calculation metrics on a fresh registry.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	r := &Recorder{registry: registry}
	r.BreakdownsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "property_breakdowns_total",
		Help: "Total number of financial breakdowns computed",
	}, []string{"plan"})
	r.ScenariosTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "property_scenarios_evaluated_total",
		Help: "Total number of exit scenarios evaluated",
	})
	r.BreakdownDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "property_breakdown_duration_seconds",
		Help:    "Financial breakdown computation time in seconds",
		Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
	})
	r.LastROI = factory.NewGauge(prometheus.GaugeOpts{
		Name: "property_last_roi_percent",
		Help: "ROI of the most recent breakdown in percent",
	})
	return r
}

// ObserveBreakdown records one computed breakdown.
func (r *Recorder) ObserveBreakdown(planName string, elapsed time.Duration, roi float64) {
	r.BreakdownsTotal.WithLabelValues(planName).Inc()
	r.BreakdownDuration.Observe(elapsed.Seconds())
	r.LastROI.Set(roi)
}

// AddScenarios records n evaluated scenarios.
func (r *Recorder) AddScenarios(n int) {
	if n > 0 {
		r.ScenariosTotal.Add(float64(n))
	}
}

// WriteToTextfile writes the metrics in the text exposition format, suitable
// for the node exporter textfile collector.
func (r *Recorder) WriteToTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
