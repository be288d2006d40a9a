// Package telemetry exports dispatcher outcomes as Prometheus metrics.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"encore.app/operations/idempotency"
)

// Recorder implements idempotency.Observer. Label cardinality is bounded by the
// registered operation types and the fixed set of outcomes.
type Recorder struct {
	registry        *prometheus.Registry
	dispatchTotal   *prometheus.CounterVec
	handlerDuration *prometheus.HistogramVec
}

var _ idempotency.Observer = (*Recorder)(nil)

// NewRecorder creates a Recorder with its own registry, so several recorders can coexist in tests.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		dispatchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "operations_dispatch_total",
			Help: "Total dispatched operations by operation type and outcome",
		}, []string{"operation_type", "outcome"}),
		handlerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "operations_handler_duration_seconds",
			Help:    "Duration of operation handler executions",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation_type"}),
	}
	r.registry.MustRegister(r.dispatchTotal, r.handlerDuration)
	return r
}

func (r *Recorder) ObserveDispatch(operationType string, outcome idempotency.Outcome) {
	r.dispatchTotal.WithLabelValues(operationType, string(outcome)).Inc()
}

func (r *Recorder) ObserveHandler(operationType string, elapsed time.Duration) {
	r.handlerDuration.WithLabelValues(operationType).Observe(elapsed.Seconds())
}

// Handler serves the recorder's metrics in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
