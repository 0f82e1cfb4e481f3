package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/satriahrh/consultassist/domain"
)

// ModelCalls counts and times calls to the generative model
type ModelCalls struct {
	registry *prometheus.Registry
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewModelCalls creates the collectors and registers them on a fresh registry
func NewModelCalls() (*ModelCalls, error) {
	m := &ModelCalls{
		registry: prometheus.NewRegistry(),
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "consult",
			Name:      "model_requests_total",
			Help:      "Calls to the generative model by operation and outcome",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "consult",
			Name:      "model_request_duration_seconds",
			Help:      "Generative model call latency",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
		}, []string{"operation"}),
	}

	for _, c := range []prometheus.Collector{
		m.total,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveModelCall implements usecase.CallObserver
func (m *ModelCalls) ObserveModelCall(op domain.Operation, outcome string, elapsed time.Duration) {
	m.total.WithLabelValues(string(op), outcome).Inc()
	m.duration.WithLabelValues(string(op)).Observe(elapsed.Seconds())
}

// Handler serves the registry in the prometheus exposition format
func (m *ModelCalls) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
