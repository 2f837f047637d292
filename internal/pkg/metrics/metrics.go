// Package metrics defines and registers the tracker's Prometheus metrics.
// It is the single source of truth for metric names, labels, and help
// strings. Metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tracker"

// ── Transition metrics ───────────────────────────────────────────────────────

// TransitionsTotal counts completed location changes.
// Labels:
//   - from: the client's prior location
//   - to:   the location they moved to
var TransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transitions_total",
		Help:      "Total number of completed client location changes.",
	},
	[]string{"from", "to"},
)

// DeparturesCancelledTotal counts Away moves abandoned at the return-time prompt.
var DeparturesCancelledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "departures_cancelled_total",
		Help:      "Total number of departures cancelled at the return-time prompt.",
	},
)

// ClientsByLocation tracks how many clients currently occupy each location.
var ClientsByLocation = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "clients",
		Help:      "Current number of clients in each location.",
	},
	[]string{"location"},
)

// ValidationErrorsTotal counts operator input rejected by the engine.
// Label:
//   - op: the rejected operation (add, update, event)
var ValidationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_errors_total",
		Help:      "Total number of operations rejected for invalid input.",
	},
	[]string{"op"},
)

// ── Timer metrics ────────────────────────────────────────────────────────────

// ChecksTotal counts individual quarter-hour check notices raised.
var ChecksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checks_total",
		Help:      "Total number of per-client wellness check notices raised.",
	},
)

// ShowerTimeoutsTotal counts shower timers that expired while the client
// was still in the shower.
var ShowerTimeoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shower_timeouts_total",
		Help:      "Total number of shower sessions that reached their time limit.",
	},
)

// ── Persistence and delivery ─────────────────────────────────────────────────

// PersistenceErrorsTotal counts failed writes and reads.
// Label:
//   - op: "save_roster", "load_roster", "append_log", "load_logs"
var PersistenceErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "persistence_errors_total",
		Help:      "Total number of failed roster or activity log operations.",
	},
	[]string{"op"},
)

// NoticesTotal counts notices handed to a delivery sink.
// Labels:
//   - kind:   "check_due", "shower_ended", "invalid_input"
//   - sink:   the sink name (e.g. "log", "redis")
//   - result: "ok" or "error"
var NoticesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notices_total",
		Help:      "Total number of operator notices delivered, by kind, sink, and result.",
	},
	[]string{"kind", "sink", "result"},
)

// NoticeQueueDepth tracks notices waiting in each delivery worker channel.
var NoticeQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notice_queue_depth",
		Help:      "Current number of notices pending in each delivery worker channel.",
	},
	[]string{"worker_id"},
)
