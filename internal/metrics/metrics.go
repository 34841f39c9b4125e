// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// VMActionsTotal counts dispatched VM actions by action name and outcome.
	// Unsupported actions are counted with action="invalid".
	VMActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "console",
			Name:      "vm_actions_total",
			Help:      "Counter of VM control actions.",
		}, []string{"action", "outcome"})

	// VMLoadsTotal counts VM loads by mode (all, user) and outcome
	// (ok, fallback).
	VMLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "console",
			Name:      "vm_loads_total",
			Help:      "Counter of VM list loads.",
		}, []string{"mode", "outcome"})

	// NotificationsTotal counts notifications recorded in the center.
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "console",
			Name:      "notifications_total",
			Help:      "Counter of emitted notifications.",
		}, []string{"level"})
)
