// Package exchange converts amounts between currencies using a snapshot of
// rates fetched from a remote provider. Every conversion triggers a fresh
// fetch; nothing is cached between calls.
package exchange

import (
	"context"
	"time"
)

// DefaultBase is the base currency requested from the provider when none is configured.
const DefaultBase = "eur"

// RateSnapshot is a point-in-time set of rates relative to Base.
// Rates does not contain the base itself.
type RateSnapshot struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// Rate resolves the base-relative rate for code. The base resolves to 1.0.
func (s *RateSnapshot) Rate(code string) (float64, bool) {
	if code == s.Base {
		return 1.0, true
	}
	rate, ok := s.Rates[code]
	return rate, ok
}

// Conversion is the result of converting OriginAmount of OriginCurrency.
// Rate reads as "1 OriginCurrency = Rate DestinationCurrency".
type Conversion struct {
	OriginCurrency      string    `json:"origin_currency"`
	DestinationCurrency string    `json:"destination_currency"`
	OriginAmount        float64   `json:"origin_amount"`
	Rate                float64   `json:"rate"`
	DestinationAmount   float64   `json:"destination_amount"`
	ConversionTime      time.Time `json:"conversion_time"`
}

// RateRequest carries what a provider needs to fetch the latest rates.
type RateRequest struct {
	AccessKey string
	Base      string
}

// RateProvider fetches the latest rate snapshot.
type RateProvider interface {
	Latest(ctx context.Context, req RateRequest) (*RateSnapshot, error)
}

// RateProviderFunc adapts a function to RateProvider.
type RateProviderFunc func(ctx context.Context, req RateRequest) (*RateSnapshot, error)

// Latest implements RateProvider.
func (f RateProviderFunc) Latest(ctx context.Context, req RateRequest) (*RateSnapshot, error) {
	return f(ctx, req)
}

// Config is read once when the converter is built.
type Config struct {
	AccessKey string
	Base      string
}

// Service converts an amount from one currency to another.
type Service interface {
	Convert(ctx context.Context, origin, destination string, amount float64) (*Conversion, error)
}
