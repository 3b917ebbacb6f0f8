package employee

import (
	"time"

	"go-bookingdesk/internal/domain"

	"github.com/google/uuid"
)

type Employee struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID string      `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email      string      `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password   string      `gorm:"type:varchar(255);not null"`
	Role       domain.Role `gorm:"type:varchar(20);not null;default:'staff'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
