// Package metrics holds the storefront's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups every collector so tests can use a private registry.
type Metrics struct {
	HTTPRequests   *prometheus.CounterVec
	HTTPDuration   *prometheus.HistogramVec
	CatalogQueries prometheus.Counter
	CartMutations  *prometheus.CounterVec
	Submissions    *prometheus.CounterVec
	ActiveSessions prometheus.GaugeFunc
}

// New creates the collectors and registers them with reg. activeSessions
// reports the live session count on scrape.
func New(reg prometheus.Registerer, activeSessions func() int) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "storefront",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		CatalogQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "catalog_queries_total",
			Help:      "Filter/sort queries run against the catalog.",
		}),
		CartMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "cart_mutations_total",
			Help:      "Cart and wishlist mutations by action and result.",
		}, []string{"action", "result"}),
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Name:      "form_submissions_total",
			Help:      "Booking and contact submissions by form and outcome.",
		}, []string{"form", "outcome"}),
	}
	m.ActiveSessions = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "storefront",
		Name:      "active_sessions",
		Help:      "Sessions currently held in memory.",
	}, func() float64 {
		if activeSessions == nil {
			return 0
		}
		return float64(activeSessions())
	})

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.CatalogQueries,
		m.CartMutations,
		m.Submissions,
		m.ActiveSessions,
	)
	return m
}

// Result labels an operation outcome from its error.
func Result(err error) string {
	if err != nil {
		return "rejected"
	}
	return "ok"
}
