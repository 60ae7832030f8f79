package conversion

import (
	"context"

	"github.com/amirasaad/exchange/pkg/dto"
	"github.com/google/uuid"
)

// Repository stores the history of conversions performed by users.
type Repository interface {
	// Create persists a conversion and returns the stored record.
	Create(ctx context.Context, create *dto.ConversionCreate) (*dto.ConversionRead, error)

	// ListByUser lists a user's conversions, oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.ConversionRead, error)
}
