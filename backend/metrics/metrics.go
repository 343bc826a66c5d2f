// ABOUTME: Prometheus collectors for placement evaluations
// ABOUTME: Counts outcomes and violations and times each evaluation pass

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
)

const namespace = "vnf_placement"

// Outcome labels for evaluations_total
const (
	OutcomeFeasible = "feasible"
	OutcomeViolated = "violated"
	OutcomeInvalid  = "invalid"
)

// Recorder owns a private registry so tests and multiple servers do not collide
// on the global default registry.
type Recorder struct {
	registry    *prometheus.Registry
	evaluations *prometheus.CounterVec
	violations  *prometheus.CounterVec
	duration    prometheus.Histogram
	cacheHits   prometheus.Counter
}

// NewRecorder creates and registers the evaluator collectors
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Total placement evaluations grouped by outcome.",
		}, []string{"outcome"}),
		violations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "constraint_violations_total",
			Help:      "Total constraint violations grouped by constraint kind.",
		}, []string{"constraint"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "evaluation_duration_seconds",
			Help:      "Duration of placement evaluation passes.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluation_cache_hits_total",
			Help:      "Evaluations answered from the result cache.",
		}),
	}
	r.registry.MustRegister(r.evaluations, r.violations, r.duration, r.cacheHits)
	return r
}

// ObserveResult records a completed evaluation
func (r *Recorder) ObserveResult(result models.EvaluationResult, elapsed time.Duration) {
	if r == nil {
		return
	}
	outcome := OutcomeFeasible
	if !result.Feasible() {
		outcome = OutcomeViolated
	}
	r.evaluations.WithLabelValues(outcome).Inc()
	for _, v := range result.Violations() {
		r.violations.WithLabelValues(v).Inc()
	}
	r.duration.Observe(elapsed.Seconds())
}

// ObserveInvalid records an evaluation rejected for malformed input
func (r *Recorder) ObserveInvalid() {
	if r == nil {
		return
	}
	r.evaluations.WithLabelValues(OutcomeInvalid).Inc()
}

// ObserveCacheHit records an evaluation served from cache
func (r *Recorder) ObserveCacheHit() {
	if r == nil {
		return
	}
	r.cacheHits.Inc()
}

// Registry exposes the underlying registry for scraping and tests
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
