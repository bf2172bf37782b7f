// Package middleware provides cross-cutting concerns for the evaluation
// engine: metrics collection and recompute throttling.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/GodfreyEngineering/chainsolve/internal/domain"
	"github.com/GodfreyEngineering/chainsolve/internal/ports"
)

// PrometheusMetrics implements the MetricsCollector interface using
// Prometheus. It tracks pass latency, per-pass node counts, result kinds
// per operation type, and recovery-barrier faults.
type PrometheusMetrics struct {
	passDuration prometheus.Histogram
	passNodes    *prometheus.GaugeVec
	nodeResults  *prometheus.CounterVec
	faults       *prometheus.CounterVec
}

// NewPrometheusMetrics creates a PrometheusMetrics instance and registers
// all metrics in the global Prometheus registry. Creating two instances in
// one process panics on duplicate registration; hold one per process.
func NewPrometheusMetrics() *PrometheusMetrics {
	return &PrometheusMetrics{
		passDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "evaluation_pass_duration_seconds",
				Help:    "Wall time of one full evaluation pass.",
				Buckets: prometheus.DefBuckets,
			},
		),
		passNodes: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "evaluation_pass_nodes",
				Help: "Node counts of the most recent pass by outcome.",
			},
			[]string{"outcome"},
		),
		nodeResults: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "evaluation_node_results_total",
				Help: "Computed node results by operation type and value kind.",
			},
			[]string{"block_type", "kind"},
		),
		faults: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "evaluation_faults_total",
				Help: "Block panics caught by the recovery barrier, by operation type.",
			},
			[]string{"block_type"},
		),
	}
}

// RecordPass records the duration and node outcome counts of one pass.
func (pm *PrometheusMetrics) RecordPass(duration time.Duration, resolved, unreachable int) {
	pm.passDuration.Observe(duration.Seconds())
	pm.passNodes.WithLabelValues("resolved").Set(float64(resolved))
	pm.passNodes.WithLabelValues("unreachable").Set(float64(unreachable))
}

// RecordNodeResult counts one computed result by operation type and kind.
func (pm *PrometheusMetrics) RecordNodeResult(blockType string, kind domain.Kind) {
	pm.nodeResults.WithLabelValues(blockType, kind.String()).Inc()
}

// RecordFault counts one recovery-barrier activation for an operation type.
func (pm *PrometheusMetrics) RecordFault(blockType string) {
	pm.faults.WithLabelValues(blockType).Inc()
}

// Compile-time verification that PrometheusMetrics implements MetricsCollector.
var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)
