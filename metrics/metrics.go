// Package metrics records solver runs as Prometheus metrics on a private
// registry, which the CLI can dump to a node-exporter textfile.
package metrics

import (
	"errors"

	"github.com/katalvlaran/tspexact/tsp"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tspexact"

// Recorder owns a registry and the solver collectors registered on it.
type Recorder struct {
	registry *prometheus.Registry

	solves    *prometheus.CounterVec
	failures  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	evaluated *prometheus.CounterVec
	nodes     prometheus.Histogram
	optimal   *prometheus.GaugeVec
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Completed solves by algorithm.",
		}, []string{"algorithm"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solve_failures_total",
			Help:      "Rejected solves by error kind.",
		}, []string{"reason"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock solve duration by algorithm.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"algorithm"}),
		evaluated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluated_routes_total",
			Help:      "Routes materialized by solves.",
		}, []string{"algorithm"}),
		nodes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_nodes",
			Help:      "Instance size of completed solves.",
			Buckets:   prometheus.LinearBuckets(3, 2, 10),
		}),
		optimal: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_optimal_cost",
			Help:      "Optimal cycle cost of the most recent solve.",
		}, []string{"algorithm"}),
	}
	r.registry.MustRegister(r.solves, r.failures, r.duration, r.evaluated, r.nodes, r.optimal)

	return r
}

// Registry exposes the underlying registry (for HTTP handlers or tests).
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Observe records a completed solve over n nodes.
func (r *Recorder) Observe(n int, stats tsp.SolveStats) {
	algo := stats.AlgorithmName()
	r.solves.WithLabelValues(algo).Inc()
	r.duration.WithLabelValues(algo).Observe(stats.Elapsed.Seconds())
	r.evaluated.WithLabelValues(algo).Add(float64(stats.EvaluatedRoutes))
	r.nodes.Observe(float64(n))
	r.optimal.WithLabelValues(algo).Set(stats.OptimalCost)
}

// ObserveError records a rejected solve, classified by sentinel.
func (r *Recorder) ObserveError(err error) {
	r.failures.WithLabelValues(Reason(err)).Inc()
}

// Reason maps a solver error to a stable label value.
func Reason(err error) string {
	switch {
	case errors.Is(err, tsp.ErrInsufficientNodes):
		return "insufficient_nodes"
	case errors.Is(err, tsp.ErrUnrecognizedAlgorithm):
		return "unrecognized_algorithm"
	case errors.Is(err, tsp.ErrDuplicateNode), errors.Is(err, tsp.ErrEmptyNodeID):
		return "invalid_node"
	case errors.Is(err, tsp.ErrTooManyNodes):
		return "too_many_nodes"
	case errors.Is(err, tsp.ErrNilCostFunc):
		return "nil_cost"
	default:
		return "other"
	}
}

// WriteTextfile writes the registry in the Prometheus text format to path
// (atomically, via prometheus.WriteToTextfile).
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
