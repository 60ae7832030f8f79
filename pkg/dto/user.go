package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserCreate represents the data needed to create a new user.
// Password is already hashed at this point.
type UserCreate struct {
	ID       uuid.UUID
	Username string
	Email    string
	Password string
}

// UserUpdate represents the data that can be updated for a user.
type UserUpdate struct {
	Username *string
	Email    *string
	Password *string
}

// UserRead represents a read-optimized view of a user.
type UserRead struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
