// Package metrics defines and registers all custom Prometheus metrics for the
// users API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default registry at package init via
// promauto; the /metrics route exposes that registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "users_api"

// Outcome label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// ── User metrics ──────────────────────────────────────────────────────────────

// UserOperationsTotal counts user service calls.
// Labels:
//   - operation: "create", "get", "list" or "delete"
//   - result: "success" or "failure"
var UserOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_operations_total",
		Help:      "Total number of user operations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// UserCreateRejectionsTotal counts create requests turned away by business rules.
// Label:
//   - reason: "missing_fields" or "duplicate_email"
var UserCreateRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_create_rejections_total",
		Help:      "Total number of rejected user creations, by reason.",
	},
	[]string{"reason"},
)

// UsersStored tracks the number of records currently held by the store.
var UsersStored = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "users_stored",
		Help:      "Current number of user records in the store.",
	},
)

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestDuration measures request latency.
// Labels:
//   - method: HTTP method
//   - route: the matched route pattern (e.g. "/api/users/:id"), not the raw path
//   - status: response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests, by method, route and status code.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)
