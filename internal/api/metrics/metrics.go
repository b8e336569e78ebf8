// Package metrics defines and registers all custom Prometheus metrics for
// the TaskMate API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package load; the HTTP-level series come from the echoprometheus
// middleware wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskmate"

// RegistrationsTotal counts completed account registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successfully registered accounts.",
	},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "rate_limited", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TasksCreatedTotal counts newly created tasks.
// Label:
//   - priority: "Low", "Medium", or "High"
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created, by priority.",
	},
	[]string{"priority"},
)

// TasksDueSoon tracks how many open tasks the reminder scheduler found due
// within its lookahead window on its last sweep.
var TasksDueSoon = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "tasks_due_soon",
		Help:      "Open tasks due within the reminder lookahead window.",
	},
)

// TokenRejectionsTotal counts requests rejected by the auth middleware.
// Label:
//   - reason: "missing", "malformed", "bad_signature", or "expired"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of requests rejected at the auth gate.",
	},
	[]string{"reason"},
)
