package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the Prometheus instruments for the dashboard service.
type Collector struct {
	GatewayFetches *prometheus.CounterVec
	Refreshes      prometheus.Counter
	Exports        *prometheus.CounterVec
}

// NewCollector creates the collectors and registers them on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		GatewayFetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_gateway_fetches_total",
				Help: "Remote fetches issued by the data gateway, by resource and outcome.",
			},
			[]string{"resource", "outcome"},
		),
		Refreshes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "dashboard_refreshes_total",
				Help: "Completed refresh cycles, initial load included.",
			},
		),
		Exports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_exports_total",
				Help: "Export files produced, by subject.",
			},
			[]string{"subject"},
		),
	}

	reg.MustRegister(c.GatewayFetches, c.Refreshes, c.Exports)
	return c
}

// FetchOK records a successful gateway fetch for a resource.
func (c *Collector) FetchOK(resource string) {
	c.GatewayFetches.WithLabelValues(resource, "ok").Inc()
}

// FetchFailed records a failed gateway fetch for a resource.
func (c *Collector) FetchFailed(resource string) {
	c.GatewayFetches.WithLabelValues(resource, "error").Inc()
}
