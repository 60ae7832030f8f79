package conversion

import (
	"time"

	"github.com/google/uuid"
)

// Conversion is a stored conversion. The destination amount is derived on read.
type Conversion struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement"`
	UserID              uuid.UUID `gorm:"type:uuid;index;not null"`
	OriginCurrency      string    `gorm:"size:16;not null"`
	DestinationCurrency string    `gorm:"size:16;not null"`
	Amount              float64   `gorm:"not null"`
	Rate                float64   `gorm:"not null"`
	ConversionTime      time.Time `gorm:"not null"`
}

func (Conversion) TableName() string {
	return "conversions"
}
