// Package metrics defines and registers all custom Prometheus metrics for the
// credit-repair API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "creditrepair"

// RemoteErrorsTotal counts failed calls against the hosted backend.
// Labels:
//   - entity: the table-backed entity (e.g. "clients", "credit_scores")
//   - op: the operation that failed ("list", "get", "create", "update")
var RemoteErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "remote_errors_total",
		Help:      "Total number of remote backend calls that failed.",
	},
	[]string{"entity", "op"},
)

// FallbacksTotal counts remote failures masked by fallback data.
// Labels:
//   - entity: the entity served from fallback
//   - mode: "local" (bundled document), "synthetic" (in-memory record)
var FallbacksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fallbacks_total",
		Help:      "Total number of responses served from fallback data, by mode.",
	},
	[]string{"entity", "mode"},
)

// LoginsTotal counts sign-in attempts.
// Labels:
//   - outcome: "success" or "failure"
//   - path: "remote" (backend credential check) or "demo" (seed table)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of sign-in attempts, by outcome and path.",
	},
	[]string{"outcome", "path"},
)
