package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HttpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "solscreener_http_request_duration_seconds",
			Help:    "API request latency by route and status.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "status"},
	)

	ProviderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solscreener_provider_requests_total",
			Help: "Upstream provider requests.",
		},
		[]string{"provider"},
	)

	ProviderErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solscreener_provider_errors_total",
			Help: "Upstream provider failures, including non-2xx responses.",
		},
		[]string{"provider"},
	)

	ResolveSourceTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solscreener_resolve_source_total",
			Help: "Which provider in the fallback chain resolved a token.",
		},
		[]string{"source"},
	)

	LeaderboardCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solscreener_leaderboard_cache_total",
			Help: "Leaderboard cache lookups by outcome.",
		},
		[]string{"outcome"},
	)

	SyntheticChartsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "solscreener_synthetic_charts_total",
			Help: "Chart requests served with generated placeholder candles.",
		},
	)
)

func MustRegister() {
	prometheus.MustRegister(
		HttpRequestDuration,
		ProviderRequestsTotal,
		ProviderErrorsTotal,
		ResolveSourceTotal,
		LeaderboardCacheTotal,
		SyntheticChartsTotal,
	)
}

func ObserveRequest(route, status string, seconds float64) {
	HttpRequestDuration.WithLabelValues(route, status).Observe(seconds)
}

func ProviderRequest(provider string) {
	ProviderRequestsTotal.WithLabelValues(provider).Inc()
}

func ProviderError(provider string) {
	ProviderErrorsTotal.WithLabelValues(provider).Inc()
}

func ResolveSource(source string) {
	ResolveSourceTotal.WithLabelValues(source).Inc()
}

func LeaderboardCache(outcome string) {
	LeaderboardCacheTotal.WithLabelValues(outcome).Inc()
}
