package user

import (
	"context"

	"github.com/amirasaad/exchange/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines user data access. Lookups return (nil, nil) when no
// user matches.
type Repository interface {
	// Create inserts a new user record from a DTO.
	Create(ctx context.Context, create *dto.UserCreate) error

	// Update applies the non-nil fields of update to the user with the given ID.
	Update(ctx context.Context, id uuid.UUID, update *dto.UserUpdate) error

	Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)

	// GetByUsername is the identity lookup used to attribute conversions.
	GetByUsername(ctx context.Context, username string) (*dto.UserRead, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// List returns all users ordered by username.
	List(ctx context.Context) ([]*dto.UserRead, error)
}
