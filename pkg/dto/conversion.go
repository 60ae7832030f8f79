package dto

import (
	"time"

	"github.com/google/uuid"
)

// ConversionCreate is a conversion to be recorded for a user.
type ConversionCreate struct {
	UserID              uuid.UUID
	OriginCurrency      string
	DestinationCurrency string
	Amount              float64
	Rate                float64
	ConversionTime      time.Time
}

// ConversionRead is a stored conversion. DestinationAmount is not stored;
// readers derive it as OriginAmount * Rate.
type ConversionRead struct {
	ID                  int64     `json:"id"`
	UserID              uuid.UUID `json:"user_id"`
	OriginCurrency      string    `json:"origin_currency"`
	DestinationCurrency string    `json:"destination_currency"`
	OriginAmount        float64   `json:"origin_amount"`
	DestinationAmount   float64   `json:"destination_amount"`
	Rate                float64   `json:"rate"`
	ConversionTime      time.Time `json:"conversion_time"`
}
