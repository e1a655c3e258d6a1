package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the gauges/counters a run updates as it progresses.
type Collector struct {
	CurrentHND      prometheus.Gauge
	ActiveHeight    prometheus.Gauge
	ActivePass      prometheus.Gauge
	ExchangesTotal  prometheus.Counter
	PassesCompleted prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg *prometheus.Registry) *Collector {
	c := &Collector{
		CurrentHND: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ldgssm", Name: "current_hnd", Help: "Most recently computed Hierarchy Neighborhood Distance.",
		}),
		ActiveHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ldgssm", Name: "active_height", Help: "Tree height the sort driver is currently optimizing.",
		}),
		ActivePass: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ldgssm", Name: "active_pass", Help: "Index of the pass currently running.",
		}),
		ExchangesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ldgssm", Name: "exchanges_total", Help: "Total leaf reassignments made across the run.",
		}),
		PassesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ldgssm", Name: "passes_completed_total", Help: "Number of passes completed so far.",
		}),
	}
	reg.MustRegister(c.CurrentHND, c.ActiveHeight, c.ActivePass, c.ExchangesTotal, c.PassesCompleted)
	return c
}

// Observe records one sort-driver iteration's outcome.
func (c *Collector) Observe(pass, height int, distance float64, numExchanges int) {
	c.ActivePass.Set(float64(pass))
	c.ActiveHeight.Set(float64(height))
	c.CurrentHND.Set(distance)
	c.ExchangesTotal.Add(float64(numExchanges))
}

// Handler returns an http.Handler serving reg's metrics in the Prometheus
// exposition format, suitable for mounting at "/metrics".
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
