// Package metrics defines and registers the custom Prometheus metrics of the
// farmdesk client toolkit. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "farmdesk"

// ── HTTP client metrics ──────────────────────────────────────────────────────

// ClientRequestsTotal counts requests that received an HTTP response.
// Labels:
//   - method: HTTP verb (e.g. "GET")
//   - status: numeric status code as a string (e.g. "200", "422")
var ClientRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_requests_total",
		Help:      "Total number of API requests that received a response, by method and status.",
	},
	[]string{"method", "status"},
)

// ClientRequestDuration measures the round trip of a request, response or not.
// Label:
//   - method: HTTP verb
var ClientRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "client_request_duration_seconds",
		Help:      "Duration of API round trips from send to response or transport failure.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"method"},
)

// ClientNetworkErrorsTotal counts requests that never reached the server.
var ClientNetworkErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_network_errors_total",
		Help:      "Total number of API requests that failed at the transport layer.",
	},
)

// SessionInvalidationsTotal counts session tokens dropped because of a 401.
var SessionInvalidationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_invalidations_total",
		Help:      "Total number of sessions invalidated by an authentication failure.",
	},
)

// ── Notification metrics ─────────────────────────────────────────────────────

// ToastsEmittedTotal counts toasts published on the notification bus.
// Label:
//   - type: "success", "error", "warning" or "info"
var ToastsEmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "toasts_emitted_total",
		Help:      "Total number of toasts emitted on the notification bus, by type.",
	},
	[]string{"type"},
)

// ToastSubscriberPanicsTotal counts subscriber callbacks that panicked during delivery.
var ToastSubscriberPanicsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "toast_subscriber_panics_total",
		Help:      "Total number of toast subscriber callbacks that panicked and were isolated.",
	},
)
