package user

import (
	"time"

	"github.com/amirasaad/exchange/infra/repository/conversion"
	"github.com/google/uuid"
)

// User represents a user record in the database.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"uniqueIndex;not null;size:50"`
	Email     string    `gorm:"not null;size:255"`
	Password  string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Conversions []conversion.Conversion `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}
