package appointment

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDeclined = "declined"
	// StatusCompleted is reserved; no transition reaches it yet.
	StatusCompleted = "completed"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`

	AppointmentDate time.Time `gorm:"type:date;not null"`
	// TimeSlot is an opaque display string, e.g. "10:00 AM - 10:30 AM".
	// It is not validated against any availability model.
	TimeSlot string `gorm:"type:varchar(50);not null"`

	Name   string `gorm:"type:varchar(255);not null"`
	Email  string `gorm:"type:varchar(255);not null"`
	Phone1 string `gorm:"type:varchar(30);not null"`
	Phone2 string `gorm:"type:varchar(30)"`

	NumberOfPeople     int    `gorm:"not null;default:1"`
	ExistingEmployeeID string `gorm:"type:varchar(50)"`
	Description        string `gorm:"type:text"`

	Status string `gorm:"type:varchar(20);not null;default:'pending';index"`

	ApprovedBy    *string `gorm:"type:varchar(50)"`
	ApprovedAt    *time.Time
	DeclinedBy    *string `gorm:"type:varchar(50)"`
	DeclineReason *string `gorm:"type:text"`
	DeclinedAt    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
