package service

import (
	"context"
	"time"

	"clinic-management-backend/internal/metrics"
	"clinic-management-backend/internal/models"

	"github.com/rs/zerolog"
)

// ReminderStore is the persistence surface for the reminder worker.
// Implemented by repository.AppointmentRepository.
type ReminderStore interface {
	ListUnreminded(date string) ([]models.Appointment, error)
	MarkReminded(id uint) error
}

// ReminderService is a background worker that flags appointments happening
// tomorrow. Delivery is a log entry; a real notification channel can hang
// off the same loop later.
type ReminderService struct {
	appointments ReminderStore
	interval     time.Duration
	logger       zerolog.Logger
}

func NewReminderService(appointments ReminderStore, interval time.Duration, logger zerolog.Logger) *ReminderService {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &ReminderService{
		appointments: appointments,
		interval:     interval,
		logger:       logger,
	}
}

// Start runs the reminder loop until the context is canceled.
func (w *ReminderService) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("reminder worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("reminder worker stopped")
			return
		case <-ticker.C:
			w.sendReminders(time.Now())
		}
	}
}

// sendReminders processes one sweep for appointments on the day after now.
func (w *ReminderService) sendReminders(now time.Time) {
	tomorrow := now.AddDate(0, 0, 1).Format(dateLayout)

	appointments, err := w.appointments.ListUnreminded(tomorrow)
	if err != nil {
		w.logger.Error().Err(err).Msg("failed to query appointments for reminders")
		return
	}

	for _, appointment := range appointments {
		w.logger.Info().
			Uint("appointment_id", appointment.ID).
			Uint("patient_id", appointment.PatientID).
			Str("date", appointment.Date).
			Str("time", appointment.Time).
			Msg("appointment reminder")

		if err := w.appointments.MarkReminded(appointment.ID); err != nil {
			w.logger.Error().Err(err).Uint("appointment_id", appointment.ID).Msg("failed to mark reminder sent")
			continue
		}
		metrics.RemindersSentTotal.Inc()
	}
}
