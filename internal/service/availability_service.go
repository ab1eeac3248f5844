package service

import (
	"errors"
	"fmt"

	"clinic-management-backend/internal/models"
	"clinic-management-backend/internal/repository"
)

// AvailabilityStore is the persistence surface for availability management.
// Implemented by repository.AvailabilityRepository.
type AvailabilityStore interface {
	FindByDoctorDay(doctorID uint, dayOfWeek int) (*models.DoctorAvailability, error)
	ListByDoctor(doctorID uint) ([]models.DoctorAvailability, error)
	Create(availability *models.DoctorAvailability) error
	Save(availability *models.DoctorAvailability) error
}

type AvailabilityService struct {
	availability AvailabilityStore
}

func NewAvailabilityService(availability AvailabilityStore) *AvailabilityService {
	return &AvailabilityService{availability: availability}
}

// AvailabilityInput is one weekday's working-hours window.
type AvailabilityInput struct {
	DayOfWeek   int
	StartTime   string
	EndTime     string
	IsAvailable bool
}

// List returns all availability rows for the doctor, ordered by weekday.
func (s *AvailabilityService) List(doctorID uint) ([]models.DoctorAvailability, error) {
	return s.availability.ListByDoctor(doctorID)
}

// Set upserts the availability row keyed by (doctor, weekday): the existing
// row is updated in place, otherwise a new one is inserted.
func (s *AvailabilityService) Set(doctorID uint, in AvailabilityInput) (*models.DoctorAvailability, error) {
	if in.DayOfWeek < 0 || in.DayOfWeek > 6 {
		return nil, errors.New("Day of week must be between 0 (Monday) and 6 (Sunday)")
	}

	existing, err := s.availability.FindByDoctorDay(doctorID, in.DayOfWeek)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.StartTime = in.StartTime
		existing.EndTime = in.EndTime
		existing.IsAvailable = in.IsAvailable
		if err := s.availability.Save(existing); err != nil {
			return nil, fmt.Errorf("failed to update availability: %w", err)
		}
		return existing, nil
	}

	availability := &models.DoctorAvailability{
		DoctorID:    doctorID,
		DayOfWeek:   in.DayOfWeek,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		IsAvailable: in.IsAvailable,
	}
	if err := s.availability.Create(availability); err != nil {
		return nil, fmt.Errorf("failed to create availability: %w", err)
	}
	return availability, nil
}
