package core

import (
	cfg "github.com/automoto/tower-climb/config"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics reports climb progress. A nil *Metrics ignores every call.
type Metrics struct {
	sectionChanges *prometheus.CounterVec
	respawns       prometheus.Counter
	height         prometheus.Gauge
	section        *prometheus.GaugeVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	ns := cfg.Scheduler.MetricsNamespace
	m := &Metrics{
		sectionChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "world",
			Name:      "section_changes_total",
			Help:      "Section boundaries crossed, by direction.",
		}, []string{"direction"}),
		respawns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "world",
			Name:      "respawns_total",
			Help:      "Falls out of the bottom of the tower.",
		}),
		height: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Subsystem: "world",
			Name:      "player_height_pixels",
			Help:      "How far above the tower floor the player stands.",
		}),
		section: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: ns,
			Subsystem: "world",
			Name:      "current_section",
			Help:      "1 for the section the player is in, 0 otherwise.",
		}, []string{"section"}),
	}

	reg.MustRegister(m.sectionChanges, m.respawns, m.height, m.section)
	return m
}

func (m *Metrics) sectionChanged(direction string) {
	if m == nil {
		return
	}
	m.sectionChanges.WithLabelValues(direction).Inc()
}

func (m *Metrics) respawned() {
	if m == nil {
		return
	}
	m.respawns.Inc()
}

// observe updates the gauges. Y grows downward, so height is measured up
// from the floor.
func (m *Metrics) observe(s Status, floor float64) {
	if m == nil {
		return
	}
	m.height.Set(floor - s.Y)
	m.section.Reset()
	m.section.WithLabelValues(string(s.Section)).Set(1)
}
