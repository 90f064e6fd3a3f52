package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Exporter publishes a Snapshot as Prometheus gauges. It holds no history:
// each call to Observe overwrites the previous run's values, matching the
// demo CLI's single-gauge "latest run" use case rather than a time series.
type Exporter struct {
	registry *prometheus.Registry

	makespan     prometheus.Gauge
	slr          prometheus.Gauge
	avu          prometheus.Gauge
	vf           prometheus.Gauge
	duplications prometheus.Gauge
	cpSize       prometheus.Gauge
}

// NewExporter builds an Exporter registered against a fresh registry.
func NewExporter() *Exporter {
	registry := prometheus.NewRegistry()

	e := &Exporter{
		registry: registry,
		makespan: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "smctpd",
			Name:      "makespan",
			Help:      "Schedule makespan of the most recent run",
		}),
		slr: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "smctpd",
			Name:      "slr",
			Help:      "Schedule length ratio of the most recent run",
		}),
		avu: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "smctpd",
			Name:      "avu",
			Help:      "Average VM utilization of the most recent run",
		}),
		vf: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "smctpd",
			Name:      "vf",
			Help:      "Variance of fairness of the most recent run",
		}),
		duplications: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "smctpd",
			Name:      "duplications_total",
			Help:      "Number of accepted task duplications in the most recent run",
		}),
		cpSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "smctpd",
			Name:      "critical_path_size",
			Help:      "Number of tasks on the critical path of the most recent run",
		}),
	}

	registry.MustRegister(e.makespan, e.slr, e.avu, e.vf, e.duplications, e.cpSize)
	return e
}

// Observe overwrites the exporter's gauges with snap's values.
func (e *Exporter) Observe(snap Snapshot) {
	e.makespan.Set(snap.Makespan)
	e.slr.Set(snap.SLR)
	e.avu.Set(snap.AVU)
	e.vf.Set(snap.VF)
	e.duplications.Set(float64(snap.DuplicationCount))
	e.cpSize.Set(float64(snap.CriticalPathSize))
}

// Handler returns the HTTP handler serving the exporter's registry in
// Prometheus text exposition format.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}
