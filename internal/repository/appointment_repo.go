package repository

import (
	"errors"

	"clinic-management-backend/internal/models"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// conflictQuery matches every other non-canceled appointment occupying the
// same (doctor, date, time) slot. excludeID skips the candidate's own row so
// a reschedule to the same slot is not self-blocking.
func conflictQuery(tx *gorm.DB, doctorID uint, date, timeOfDay string, excludeID uint) *gorm.DB {
	q := tx.Model(&models.Appointment{}).
		Where("doctor_id = ? AND date = ? AND time = ? AND status <> ?",
			doctorID, date, timeOfDay, models.StatusCanceled)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	return q
}

// FindByID retrieves an appointment by primary key
func (r *AppointmentRepository) FindByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.First(&appointment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

// CountConflicts counts non-canceled appointments occupying the slot,
// excluding the given appointment id
func (r *AppointmentRepository) CountConflicts(doctorID uint, date, timeOfDay string, excludeID uint) (int64, error) {
	var count int64
	err := conflictQuery(r.db, doctorID, date, timeOfDay, excludeID).Count(&count).Error
	return count, err
}

// CreateChecked inserts a new appointment inside a transaction, re-running
// the slot conflict check so the read and the insert commit atomically.
// Returns ErrSlotTaken when the slot was grabbed between validation and write.
func (r *AppointmentRepository) CreateChecked(appointment *models.Appointment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := conflictQuery(tx, appointment.DoctorID, appointment.Date, appointment.Time, 0).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrSlotTaken
		}
		return tx.Create(appointment).Error
	})
}

// SaveChecked updates an appointment inside a transaction with the same
// conflict re-check as CreateChecked, excluding the appointment's own row.
func (r *AppointmentRepository) SaveChecked(appointment *models.Appointment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := conflictQuery(tx, appointment.DoctorID, appointment.Date, appointment.Time, appointment.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrSlotTaken
		}
		return tx.Save(appointment).Error
	})
}

// Save updates an appointment without slot checking (cancel, payment marking)
func (r *AppointmentRepository) Save(appointment *models.Appointment) error {
	return r.db.Save(appointment).Error
}

// ListByDoctor retrieves all appointments for a doctor, soonest first
func (r *AppointmentRepository) ListByDoctor(doctorID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("doctor_id = ?", doctorID).
		Order("date ASC, time ASC").
		Find(&appointments).Error
	return appointments, err
}

// ListByPatient retrieves all appointments for a patient, soonest first
func (r *AppointmentRepository) ListByPatient(patientID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("patient_id = ?", patientID).
		Order("date ASC, time ASC").
		Find(&appointments).Error
	return appointments, err
}

// ListAll retrieves every appointment, soonest first
func (r *AppointmentRepository) ListAll() ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Order("date ASC, time ASC").Find(&appointments).Error
	return appointments, err
}

// ListUnreminded retrieves non-canceled appointments on the given date that
// have not had a reminder sent yet
func (r *AppointmentRepository) ListUnreminded(date string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.
		Where("date = ? AND reminder_sent = ? AND status <> ?", date, false, models.StatusCanceled).
		Find(&appointments).Error
	return appointments, err
}

// MarkReminded flags an appointment as having had its reminder sent
func (r *AppointmentRepository) MarkReminded(id uint) error {
	return r.db.Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("reminder_sent", true).Error
}
