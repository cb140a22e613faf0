package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	UpstreamRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mgnrega", Name: "upstream_requests_total", Help: "Requests issued to the statistics API",
	})
	UpstreamErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mgnrega", Name: "upstream_errors_total", Help: "Failed statistics API requests",
	})
	UpstreamLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "mgnrega", Name: "upstream_latency_seconds", Help: "Statistics API request latency",
		Buckets: prometheus.DefBuckets,
	})
	CacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mgnrega", Name: "cache_hits_total", Help: "Performance cache hits",
	})
	CacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mgnrega", Name: "cache_misses_total", Help: "Performance cache misses",
	})
	RateLimited = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mgnrega", Name: "rate_limited_total", Help: "Requests rejected by the rate gate",
	})
)

func init() {
	prometheus.MustRegister(UpstreamRequests, UpstreamErrors, UpstreamLatency, CacheHits, CacheMisses, RateLimited)
}

func Handler() http.Handler { return promhttp.Handler() }

// ObserveUpstreamCall records one statistics API round trip.
func ObserveUpstreamCall(d time.Duration, err error) {
	UpstreamRequests.Inc()
	UpstreamLatency.Observe(d.Seconds())
	if err != nil {
		UpstreamErrors.Inc()
	}
}
