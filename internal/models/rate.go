package models

import "time"

// DoctorRate represents the doctor_rates table.
// One logical rate per doctor, updated in place; no rate history is kept.
type DoctorRate struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DoctorID    uint      `gorm:"not null;uniqueIndex" json:"doctor_id"`
	RatePerHour float64   `gorm:"not null" json:"rate_per_hour"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Doctor User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// TableName specifies the table name for DoctorRate model
func (DoctorRate) TableName() string {
	return "doctor_rates"
}
