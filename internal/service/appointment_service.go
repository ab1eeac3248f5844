package service

import (
	"errors"
	"fmt"
	"time"

	"clinic-management-backend/internal/metrics"
	"clinic-management-backend/internal/models"
	"clinic-management-backend/internal/repository"

	"github.com/rs/zerolog"
)

// Slot check outcomes. The accept/reject messages surface directly to users.
const (
	MsgDayUnavailable = "Doctor is not available on this day"
	MsgOutsideHours   = "Appointment time is outside working hours"
	MsgSlotTaken      = "This time slot is already booked"
	MsgSlotAvailable  = "Time slot is available"
)

const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04"
	dateTimeLayout = "2006-01-02 15:04"
)

// AppointmentStore is the persistence surface the appointment service needs.
// Implemented by repository.AppointmentRepository.
type AppointmentStore interface {
	FindByID(id uint) (*models.Appointment, error)
	CountConflicts(doctorID uint, date, timeOfDay string, excludeID uint) (int64, error)
	CreateChecked(appointment *models.Appointment) error
	SaveChecked(appointment *models.Appointment) error
	Save(appointment *models.Appointment) error
	ListByDoctor(doctorID uint) ([]models.Appointment, error)
	ListByPatient(patientID uint) ([]models.Appointment, error)
	ListAll() ([]models.Appointment, error)
}

// AvailabilityLookup resolves a doctor's enabled working-hours window for a
// weekday. Implemented by repository.AvailabilityRepository.
type AvailabilityLookup interface {
	FindEnabled(doctorID uint, dayOfWeek int) (*models.DoctorAvailability, error)
}

// RateLookup resolves a doctor's hourly rate.
// Implemented by repository.RateRepository.
type RateLookup interface {
	FindByDoctor(doctorID uint) (*models.DoctorRate, error)
}

// AuditLogger records audit trail entries.
// Implemented by repository.AuditRepository.
type AuditLogger interface {
	CreateAuditLog(userID *uint, action string, details string) error
}

type AppointmentService struct {
	appointments AppointmentStore
	availability AvailabilityLookup
	rates        RateLookup
	audit        AuditLogger
	logger       zerolog.Logger
}

func NewAppointmentService(
	appointments AppointmentStore,
	availability AvailabilityLookup,
	rates RateLookup,
	audit AuditLogger,
	logger zerolog.Logger,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		availability: availability,
		rates:        rates,
		audit:        audit,
		logger:       logger,
	}
}

// ScheduleInput carries the fields needed to book a new appointment.
type ScheduleInput struct {
	DoctorID  uint
	PatientID uint
	Date      string
	Time      string
	Duration  int
	Notes     string
}

// RescheduleInput carries the new slot for an existing appointment.
type RescheduleInput struct {
	Date     string
	Time     string
	Duration int
}

// AppointmentView is an appointment with its billed cost attached.
type AppointmentView struct {
	models.Appointment
	Cost float64 `json:"cost"`
}

// DashboardSummary is the role-branching dashboard payload.
type DashboardSummary struct {
	Role              string  `json:"role"`
	Total             int     `json:"total"`
	Scheduled         int     `json:"scheduled"`
	Rescheduled       int     `json:"rescheduled"`
	Canceled          int     `json:"canceled"`
	Unpaid            int     `json:"unpaid"`
	OutstandingAmount float64 `json:"outstanding_amount,omitempty"`
}

// CheckSlot determines whether the (doctor, date, time) slot is bookable.
// excludeID skips an existing appointment's own row in the conflict search so
// rescheduling to the same slot is not self-blocking. The check is read-only;
// callers that write afterwards rely on the store's transactional re-check.
//
// The returned string is the user-facing accept/reject message. The error is
// non-nil only on internal failures (bad data, storage errors).
func (s *AppointmentService) CheckSlot(doctorID uint, date, timeOfDay string, excludeID uint) (bool, string, error) {
	appointmentAt, err := time.Parse(dateTimeLayout, date+" "+timeOfDay)
	if err != nil {
		return false, "", fmt.Errorf("invalid date/time %q %q: %w", date, timeOfDay, err)
	}

	// Weekday with Monday=0 .. Sunday=6
	dayOfWeek := (int(appointmentAt.Weekday()) + 6) % 7

	availability, err := s.availability.FindEnabled(doctorID, dayOfWeek)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.SlotRejectionsTotal.WithLabelValues("day_unavailable").Inc()
			return false, MsgDayUnavailable, nil
		}
		return false, "", err
	}

	start, err := time.Parse(timeLayout, availability.StartTime)
	if err != nil {
		return false, "", fmt.Errorf("invalid availability start time %q: %w", availability.StartTime, err)
	}
	end, err := time.Parse(timeLayout, availability.EndTime)
	if err != nil {
		return false, "", fmt.Errorf("invalid availability end time %q: %w", availability.EndTime, err)
	}

	// Only the start instant is checked against the window; the appointment
	// end (start + duration) may run past the doctor's closing time.
	startMin := start.Hour()*60 + start.Minute()
	endMin := end.Hour()*60 + end.Minute()
	apptMin := appointmentAt.Hour()*60 + appointmentAt.Minute()

	if apptMin < startMin || apptMin > endMin {
		metrics.SlotRejectionsTotal.WithLabelValues("outside_hours").Inc()
		return false, MsgOutsideHours, nil
	}

	count, err := s.appointments.CountConflicts(doctorID, date, timeOfDay, excludeID)
	if err != nil {
		return false, "", err
	}
	if count > 0 {
		metrics.SlotRejectionsTotal.WithLabelValues("slot_taken").Inc()
		return false, MsgSlotTaken, nil
	}

	return true, MsgSlotAvailable, nil
}

// Cost computes the billed cost: rate_per_hour times the duration rounded up
// to full hours. A doctor without a rate on file bills 0; that is not an error.
func (s *AppointmentService) Cost(appointment *models.Appointment) (float64, error) {
	rate, err := s.rates.FindByDoctor(appointment.DoctorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	hours := (appointment.Duration + 59) / 60
	return rate.RatePerHour * float64(hours), nil
}

// Schedule books a new appointment. Patients may only book for themselves;
// receptionists must name an explicit patient; doctors cannot schedule.
func (s *AppointmentService) Schedule(actorID uint, role string, in ScheduleInput) (*models.Appointment, error) {
	patientID := in.PatientID

	switch role {
	case models.RolePatient:
		if patientID != 0 && patientID != actorID {
			return nil, errors.New("Patients can only book appointments for themselves")
		}
		patientID = actorID
	case models.RoleReceptionist:
		if patientID == 0 {
			return nil, errors.New("A patient id is required")
		}
	default:
		return nil, errors.New("Only patients and receptionists can schedule appointments")
	}

	duration := in.Duration
	if duration <= 0 {
		duration = models.DefaultDuration
	}

	ok, msg, err := s.CheckSlot(in.DoctorID, in.Date, in.Time, 0)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New(msg)
	}

	appointment := &models.Appointment{
		DoctorID:  in.DoctorID,
		PatientID: patientID,
		Date:      in.Date,
		Time:      in.Time,
		Duration:  duration,
		Status:    models.StatusScheduled,
		Notes:     in.Notes,
	}

	if err := s.appointments.CreateChecked(appointment); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			metrics.SlotRejectionsTotal.WithLabelValues("slot_taken").Inc()
			return nil, errors.New(MsgSlotTaken)
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	metrics.AppointmentsScheduledTotal.Inc()
	s.logger.Info().
		Uint("appointment_id", appointment.ID).
		Uint("doctor_id", appointment.DoctorID).
		Uint("patient_id", appointment.PatientID).
		Str("date", appointment.Date).
		Str("time", appointment.Time).
		Msg("appointment scheduled")

	_ = s.audit.CreateAuditLog(&actorID, "appointment_scheduled",
		fmt.Sprintf("Appointment %d scheduled with doctor %d on %s %s", appointment.ID, appointment.DoctorID, appointment.Date, appointment.Time))

	return appointment, nil
}

// Cancel marks an appointment as canceled. Canceling an already canceled
// appointment is not an error; the status simply stays Canceled.
func (s *AppointmentService) Cancel(actorID uint, role string, id uint) (*models.Appointment, error) {
	appointment, err := s.loadOwned(actorID, role, id)
	if err != nil {
		return nil, err
	}

	appointment.Status = models.StatusCanceled
	if err := s.appointments.Save(appointment); err != nil {
		return nil, fmt.Errorf("failed to cancel appointment: %w", err)
	}

	metrics.AppointmentsCanceledTotal.Inc()
	s.logger.Info().Uint("appointment_id", appointment.ID).Msg("appointment canceled")

	_ = s.audit.CreateAuditLog(&actorID, "appointment_canceled",
		fmt.Sprintf("Appointment %d canceled", appointment.ID))

	return appointment, nil
}

// Reschedule moves an appointment to a new slot after re-running the full
// availability check, with the appointment's own row excluded from the
// conflict search.
func (s *AppointmentService) Reschedule(actorID uint, role string, id uint, in RescheduleInput) (*models.Appointment, error) {
	appointment, err := s.loadOwned(actorID, role, id)
	if err != nil {
		return nil, err
	}

	ok, msg, err := s.CheckSlot(appointment.DoctorID, in.Date, in.Time, appointment.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New(msg)
	}

	appointment.Date = in.Date
	appointment.Time = in.Time
	if in.Duration > 0 {
		appointment.Duration = in.Duration
	}
	appointment.Status = models.StatusRescheduled
	appointment.ReminderSent = false

	if err := s.appointments.SaveChecked(appointment); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			metrics.SlotRejectionsTotal.WithLabelValues("slot_taken").Inc()
			return nil, errors.New(MsgSlotTaken)
		}
		return nil, fmt.Errorf("failed to reschedule appointment: %w", err)
	}

	metrics.AppointmentsRescheduledTotal.Inc()
	s.logger.Info().
		Uint("appointment_id", appointment.ID).
		Str("date", appointment.Date).
		Str("time", appointment.Time).
		Msg("appointment rescheduled")

	_ = s.audit.CreateAuditLog(&actorID, "appointment_rescheduled",
		fmt.Sprintf("Appointment %d moved to %s %s", appointment.ID, appointment.Date, appointment.Time))

	return appointment, nil
}

// MarkPaid sets is_paid and stamps the payment date. Doctors may mark their
// own appointments, receptionists any. There is no unmark operation.
func (s *AppointmentService) MarkPaid(actorID uint, role string, id uint) (*models.Appointment, error) {
	appointment, err := s.appointments.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	switch role {
	case models.RoleDoctor:
		if appointment.DoctorID != actorID {
			return nil, ErrNotAllowed
		}
	case models.RoleReceptionist:
		// may act on any appointment
	default:
		return nil, errors.New("Only doctors and receptionists can mark appointments as paid")
	}

	now := time.Now()
	appointment.IsPaid = true
	appointment.PaymentDate = &now

	if err := s.appointments.Save(appointment); err != nil {
		return nil, fmt.Errorf("failed to mark appointment as paid: %w", err)
	}

	metrics.PaymentsMarkedTotal.Inc()
	s.logger.Info().Uint("appointment_id", appointment.ID).Msg("appointment marked paid")

	_ = s.audit.CreateAuditLog(&actorID, "appointment_paid",
		fmt.Sprintf("Appointment %d marked as paid", appointment.ID))

	return appointment, nil
}

// List returns the caller's appointments with costs attached: patients see
// their own, doctors theirs, receptionists everything.
func (s *AppointmentService) List(actorID uint, role string) ([]AppointmentView, error) {
	appointments, err := s.listFor(actorID, role)
	if err != nil {
		return nil, err
	}
	return s.withCosts(appointments)
}

// Billing returns appointments with cost and payment state for the billing
// view. Restricted to doctors (own appointments) and receptionists (all).
func (s *AppointmentService) Billing(actorID uint, role string) ([]AppointmentView, error) {
	switch role {
	case models.RoleDoctor:
		appointments, err := s.appointments.ListByDoctor(actorID)
		if err != nil {
			return nil, err
		}
		return s.withCosts(appointments)
	case models.RoleReceptionist:
		appointments, err := s.appointments.ListAll()
		if err != nil {
			return nil, err
		}
		return s.withCosts(appointments)
	default:
		return nil, errors.New("Only doctors and receptionists can view billing")
	}
}

// Dashboard builds the role-branching summary counts.
func (s *AppointmentService) Dashboard(actorID uint, role string) (*DashboardSummary, error) {
	appointments, err := s.listFor(actorID, role)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{Role: role, Total: len(appointments)}
	for i := range appointments {
		appointment := &appointments[i]
		switch appointment.Status {
		case models.StatusScheduled:
			summary.Scheduled++
		case models.StatusRescheduled:
			summary.Rescheduled++
		case models.StatusCanceled:
			summary.Canceled++
		}
		if appointment.Status != models.StatusCanceled && !appointment.IsPaid {
			summary.Unpaid++
			if role != models.RolePatient {
				cost, err := s.Cost(appointment)
				if err != nil {
					return nil, err
				}
				summary.OutstandingAmount += cost
			}
		}
	}

	return summary, nil
}

var (
	// ErrAppointmentNotFound surfaces as a 404.
	ErrAppointmentNotFound = errors.New("Appointment not found")
	// ErrNotAllowed surfaces as a 403.
	ErrNotAllowed = errors.New("You are not allowed to modify this appointment")
)

// loadOwned fetches an appointment and enforces the cancel/reschedule
// ownership policy: patients act on their own, doctors on theirs,
// receptionists on any.
func (s *AppointmentService) loadOwned(actorID uint, role string, id uint) (*models.Appointment, error) {
	appointment, err := s.appointments.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	switch role {
	case models.RolePatient:
		if appointment.PatientID != actorID {
			return nil, ErrNotAllowed
		}
	case models.RoleDoctor:
		if appointment.DoctorID != actorID {
			return nil, ErrNotAllowed
		}
	case models.RoleReceptionist:
		// may act on any appointment
	default:
		return nil, ErrNotAllowed
	}

	return appointment, nil
}

func (s *AppointmentService) listFor(actorID uint, role string) ([]models.Appointment, error) {
	switch role {
	case models.RolePatient:
		return s.appointments.ListByPatient(actorID)
	case models.RoleDoctor:
		return s.appointments.ListByDoctor(actorID)
	default:
		return s.appointments.ListAll()
	}
}

func (s *AppointmentService) withCosts(appointments []models.Appointment) ([]AppointmentView, error) {
	views := make([]AppointmentView, 0, len(appointments))
	for i := range appointments {
		cost, err := s.Cost(&appointments[i])
		if err != nil {
			return nil, err
		}
		views = append(views, AppointmentView{Appointment: appointments[i], Cost: cost})
	}
	return views, nil
}
