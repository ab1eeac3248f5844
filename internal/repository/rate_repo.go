package repository

import (
	"errors"

	"clinic-management-backend/internal/models"

	"gorm.io/gorm"
)

type RateRepository struct {
	db *gorm.DB
}

func NewRateRepo(db *gorm.DB) *RateRepository {
	return &RateRepository{db: db}
}

// FindByDoctor retrieves the rate row for a doctor
func (r *RateRepository) FindByDoctor(doctorID uint) (*models.DoctorRate, error) {
	var rate models.DoctorRate
	err := r.db.Where("doctor_id = ?", doctorID).First(&rate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rate, nil
}

// Create inserts a new rate row
func (r *RateRepository) Create(rate *models.DoctorRate) error {
	return r.db.Create(rate).Error
}

// Save updates an existing rate row
func (r *RateRepository) Save(rate *models.DoctorRate) error {
	return r.db.Save(rate).Error
}
