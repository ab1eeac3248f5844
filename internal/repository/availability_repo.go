package repository

import (
	"errors"

	"clinic-management-backend/internal/models"

	"gorm.io/gorm"
)

type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepo(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// FindEnabled retrieves the enabled availability row for a doctor on a weekday
func (r *AvailabilityRepository) FindEnabled(doctorID uint, dayOfWeek int) (*models.DoctorAvailability, error) {
	var availability models.DoctorAvailability
	err := r.db.
		Where("doctor_id = ? AND day_of_week = ? AND is_available = ?", doctorID, dayOfWeek, true).
		First(&availability).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &availability, nil
}

// FindByDoctorDay retrieves the availability row for (doctor, weekday)
// regardless of the enabled flag. Used by the upsert path.
func (r *AvailabilityRepository) FindByDoctorDay(doctorID uint, dayOfWeek int) (*models.DoctorAvailability, error) {
	var availability models.DoctorAvailability
	err := r.db.
		Where("doctor_id = ? AND day_of_week = ?", doctorID, dayOfWeek).
		First(&availability).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &availability, nil
}

// ListByDoctor retrieves all availability rows for a doctor ordered by weekday
func (r *AvailabilityRepository) ListByDoctor(doctorID uint) ([]models.DoctorAvailability, error) {
	var rows []models.DoctorAvailability
	err := r.db.Where("doctor_id = ?", doctorID).Order("day_of_week ASC").Find(&rows).Error
	return rows, err
}

// Create inserts a new availability row
func (r *AvailabilityRepository) Create(availability *models.DoctorAvailability) error {
	return r.db.Create(availability).Error
}

// Save updates an existing availability row
func (r *AvailabilityRepository) Save(availability *models.DoctorAvailability) error {
	return r.db.Save(availability).Error
}
