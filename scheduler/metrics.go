package scheduler

import (
	"time"

	cfg "github.com/automoto/tower-climb/config"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports scheduler activity to Prometheus:
//   - <ns>_scheduler_ticks_total: counter
//   - <ns>_scheduler_callback_failures_total{kind}: counter, kind is error or panic
//   - <ns>_scheduler_frame_delta_seconds: histogram of capped deltas
//   - <ns>_scheduler_callbacks: gauge of registered callbacks at the last tick
type Metrics struct {
	ticks     prometheus.Counter
	failures  *prometheus.CounterVec
	delta     prometheus.Histogram
	callbacks prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	ns := cfg.Scheduler.MetricsNamespace
	m := &Metrics{
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "scheduler",
			Name:      "ticks_total",
			Help:      "Frames ticked by the scheduler.",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "scheduler",
			Name:      "callback_failures_total",
			Help:      "Frame callbacks that returned an error or panicked.",
		}, []string{"kind"}),
		delta: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: ns,
			Subsystem: "scheduler",
			Name:      "frame_delta_seconds",
			Help:      "Capped delta time handed to frame callbacks.",
			Buckets:   []float64{0.004, 0.008, 0.012, 0.0167, 0.02, 0.025, 0.0334},
		}),
		callbacks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Subsystem: "scheduler",
			Name:      "callbacks",
			Help:      "Callbacks invoked on the most recent tick.",
		}),
	}

	reg.MustRegister(m.ticks, m.failures, m.delta, m.callbacks)
	return m
}

func (m *Metrics) TickObserved(dt time.Duration, callbacks int) {
	m.ticks.Inc()
	m.delta.Observe(dt.Seconds())
	m.callbacks.Set(float64(callbacks))
}

func (m *Metrics) CallbackFailed(_ int, _ error, panicked bool) {
	kind := "error"
	if panicked {
		kind = "panic"
	}
	m.failures.WithLabelValues(kind).Inc()
}
