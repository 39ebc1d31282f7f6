// Package metrics defines and registers the Prometheus metrics for the
// circuitdesk client. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at package load; the optional
// ops listener exposes them on /metrics while watch mode runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "circuitdesk"

// RemoteRequestsTotal counts remote calls against the provisioning service.
// Labels:
//   - op: search, create, update, delete, login, register
//   - outcome: "ok" or "error"
var RemoteRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "remote_requests_total",
		Help:      "Total number of remote calls issued to the provisioning service.",
	},
	[]string{"op", "outcome"},
)

// RemoteRequestDuration measures how long a single remote call takes,
// including response decoding.
// Label:
//   - op: same values as RemoteRequestsTotal
var RemoteRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "remote_request_duration_seconds",
		Help:      "Duration of remote calls from request start to decoded response.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"op"},
)
