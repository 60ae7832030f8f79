package conversion

import (
	"context"

	"github.com/amirasaad/exchange/pkg/dto"
	"github.com/amirasaad/exchange/pkg/repository/conversion"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) conversion.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.ConversionCreate,
) (*dto.ConversionRead, error) {
	c := &Conversion{
		UserID:              create.UserID,
		OriginCurrency:      create.OriginCurrency,
		DestinationCurrency: create.DestinationCurrency,
		Amount:              create.Amount,
		Rate:                create.Rate,
		ConversionTime:      create.ConversionTime,
	}
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return mapModelToDTO(c), nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.ConversionRead, error) {
	var conversions []Conversion
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("conversion_time, id").
		Find(&conversions).Error; err != nil {
		return nil, err
	}

	result := make([]*dto.ConversionRead, 0, len(conversions))
	for i := range conversions {
		result = append(result, mapModelToDTO(&conversions[i]))
	}
	return result, nil
}

func mapModelToDTO(c *Conversion) *dto.ConversionRead {
	return &dto.ConversionRead{
		ID:                  c.ID,
		UserID:              c.UserID,
		OriginCurrency:      c.OriginCurrency,
		DestinationCurrency: c.DestinationCurrency,
		OriginAmount:        c.Amount,
		DestinationAmount:   c.Amount * c.Rate,
		Rate:                c.Rate,
		ConversionTime:      c.ConversionTime,
	}
}
