package user

import (
	"errors"
	"fmt"
	"time"

	"github.com/amirasaad/exchange/pkg/utils"
	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the
	// repository.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserUnauthorized is returned when credentials do not match a user.
	ErrUserUnauthorized = errors.New("user unauthorized")
	// ErrUserExists is returned when the username is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidUser is returned when required user data is missing or malformed.
	ErrInvalidUser = errors.New("invalid user")
)

// User represents a user in the system.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New creates a User with a hashed password and current timestamps.
func New(username, email, password string) (*User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username cannot be empty", ErrInvalidUser)
	}
	if !utils.IsEmail(email) {
		return nil, fmt.Errorf("%w: email %q is not valid", ErrInvalidUser, email)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password cannot be empty", ErrInvalidUser)
	}
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
