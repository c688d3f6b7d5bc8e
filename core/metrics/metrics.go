// Package metrics exposes Prometheus collectors shared by the bot runtime.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry holds every collector of the process. It is separate from the
// Prometheus default registry so tests can scrape it in isolation.
var Registry = prometheus.NewRegistry()

var UpdatesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "phonebot_updates_total",
		Help: "Telegram updates received, by kind",
	},
	[]string{"kind"},
)

var HandlerDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "phonebot_handler_duration_seconds",
		Help:    "Time spent in bot handlers",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"handler", "status"},
)

var RateLimitedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "phonebot_rate_limited_total",
		Help: "Updates dropped by the per-user rate limiter",
	},
)

var LookupsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "phonebot_lookups_total",
		Help: "Phone number submissions, by classification",
	},
	[]string{"classification"},
)

var ReportsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "phonebot_reports_total",
		Help: "Menu choices handled, by choice and outcome",
	},
	[]string{"choice", "outcome"},
)

var MetadataMissesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "phonebot_metadata_misses_total",
		Help: "Metadata fields degraded to the unknown sentinel",
	},
	[]string{"field"},
)

var SendFailuresTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "phonebot_send_failures_total",
		Help: "Outbound Telegram calls that failed after retries",
	},
	[]string{"action", "kind"},
)

var SendQueueDepth = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "phonebot_send_queue_depth",
		Help: "Jobs waiting in the outbound dispatcher queue",
	},
)

// SessionsStored tracks conversations holding a lookup session.
var SessionsStored = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "phonebot_sessions_stored",
		Help: "Conversations with a stored lookup session",
	},
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		UpdatesTotal,
		HandlerDuration,
		RateLimitedTotal,
		LookupsTotal,
		ReportsTotal,
		MetadataMissesTotal,
		SendFailuresTotal,
		SendQueueDepth,
		SessionsStored,
	)
}
