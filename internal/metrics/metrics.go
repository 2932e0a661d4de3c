// Package metrics exposes prometheus counters for the fetch and
// aggregation paths.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "datenight_cache_lookups_total",
		Help: "Response cache lookups by result (hit/miss).",
	}, []string{"result"})

	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "datenight_upstream_requests_total",
		Help: "Upstream ticketing API requests by HTTP status (or 'error' for transport failures).",
	}, []string{"status"})

	sectionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "datenight_section_load_failures_total",
		Help: "Explore section loads that ended in a failed state.",
	}, []string{"section"})
)

func CacheHit()  { cacheLookups.WithLabelValues("hit").Inc() }
func CacheMiss() { cacheLookups.WithLabelValues("miss").Inc() }

// UpstreamRequest records one upstream call outcome. code <= 0 counts as
// a transport error.
func UpstreamRequest(code int) {
	if code <= 0 {
		upstreamRequests.WithLabelValues("error").Inc()
		return
	}
	upstreamRequests.WithLabelValues(strconv.Itoa(code)).Inc()
}

func SectionFailure(section string) {
	sectionFailures.WithLabelValues(section).Inc()
}

// Handler serves the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
