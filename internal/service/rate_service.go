package service

import (
	"errors"
	"fmt"

	"clinic-management-backend/internal/models"
	"clinic-management-backend/internal/repository"
)

// RateStore is the persistence surface for rate management.
// Implemented by repository.RateRepository.
type RateStore interface {
	FindByDoctor(doctorID uint) (*models.DoctorRate, error)
	Create(rate *models.DoctorRate) error
	Save(rate *models.DoctorRate) error
}

type RateService struct {
	rates RateStore
}

func NewRateService(rates RateStore) *RateService {
	return &RateService{rates: rates}
}

// Get returns the doctor's rate row, or ErrNotFound when none is on file.
func (s *RateService) Get(doctorID uint) (*models.DoctorRate, error) {
	return s.rates.FindByDoctor(doctorID)
}

// Set upserts the doctor's hourly rate: one logical row per doctor, updated
// in place. Only updated_at tracks the change; no rate history is kept.
func (s *RateService) Set(doctorID uint, ratePerHour float64) (*models.DoctorRate, error) {
	if ratePerHour <= 0 {
		return nil, errors.New("Rate per hour must be greater than zero")
	}

	existing, err := s.rates.FindByDoctor(doctorID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.RatePerHour = ratePerHour
		if err := s.rates.Save(existing); err != nil {
			return nil, fmt.Errorf("failed to update rate: %w", err)
		}
		return existing, nil
	}

	rate := &models.DoctorRate{
		DoctorID:    doctorID,
		RatePerHour: ratePerHour,
	}
	if err := s.rates.Create(rate); err != nil {
		return nil, fmt.Errorf("failed to create rate: %w", err)
	}
	return rate, nil
}
