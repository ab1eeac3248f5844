// Package metrics defines the custom Prometheus metrics for the clinic
// backend. It is the single source of truth for metric names, labels, and
// help strings. Metrics register themselves with the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic"

// AppointmentsScheduledTotal counts successfully scheduled appointments.
var AppointmentsScheduledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_scheduled_total",
		Help:      "Total number of appointments scheduled.",
	},
)

// AppointmentsRescheduledTotal counts successful reschedules.
var AppointmentsRescheduledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_rescheduled_total",
		Help:      "Total number of appointments rescheduled.",
	},
)

// AppointmentsCanceledTotal counts cancellations (double-cancels included).
var AppointmentsCanceledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_canceled_total",
		Help:      "Total number of appointment cancellations.",
	},
)

// PaymentsMarkedTotal counts appointments marked as paid.
var PaymentsMarkedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_marked_total",
		Help:      "Total number of appointments marked as paid.",
	},
)

// SlotRejectionsTotal counts bookings rejected by the availability check.
// Label:
//   - reason: "day_unavailable", "outside_hours", or "slot_taken"
var SlotRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "slot_rejections_total",
		Help:      "Total number of bookings rejected by the availability check, by reason.",
	},
	[]string{"reason"},
)

// RemindersSentTotal counts appointment reminders emitted by the background worker.
var RemindersSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reminders_sent_total",
		Help:      "Total number of appointment reminders sent.",
	},
)
