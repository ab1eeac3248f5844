package models

// DoctorAvailability represents the doctor_availability table.
// One row per (doctor, weekday); day_of_week uses Monday=0 .. Sunday=6.
// Start/end times are "HH:MM" strings and the window is inclusive on both ends.
type DoctorAvailability struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	DoctorID    uint   `gorm:"not null;uniqueIndex:idx_doctor_day" json:"doctor_id"`
	DayOfWeek   int    `gorm:"not null;uniqueIndex:idx_doctor_day" json:"day_of_week"`
	StartTime   string `gorm:"size:5;not null" json:"start_time"`
	EndTime     string `gorm:"size:5;not null" json:"end_time"`
	IsAvailable bool   `gorm:"default:true" json:"is_available"`

	Doctor User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// TableName specifies the table name for DoctorAvailability model
func (DoctorAvailability) TableName() string {
	return "doctor_availability"
}
