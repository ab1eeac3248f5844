package models

import "time"

// Appointment statuses. Canceled rows stay in the table and no longer
// block their slot.
const (
	StatusScheduled   = "Scheduled"
	StatusRescheduled = "Rescheduled"
	StatusCanceled    = "Canceled"
)

// DefaultDuration is the appointment length in minutes when none is given.
const DefaultDuration = 60

// Appointment represents the appointments table.
// Date is "YYYY-MM-DD" and Time is "HH:MM"; together with DoctorID they form
// the slot used for conflict checking.
type Appointment struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	DoctorID     uint       `gorm:"not null;index:idx_slot" json:"doctor_id"`
	PatientID    uint       `gorm:"not null;index" json:"patient_id"`
	Date         string     `gorm:"size:10;not null;index:idx_slot" json:"date"`
	Time         string     `gorm:"size:5;not null;index:idx_slot" json:"time"`
	Duration     int        `gorm:"default:60" json:"duration"`
	Status       string     `gorm:"size:20;default:'Scheduled'" json:"status"`
	Notes        string     `gorm:"type:text" json:"notes"`
	IsPaid       bool       `gorm:"default:false" json:"is_paid"`
	PaymentDate  *time.Time `json:"payment_date"`
	ReminderSent bool       `gorm:"default:false" json:"reminder_sent"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Doctor  User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}
