package exchange

import (
	"context"
	"errors"
	"time"
)

// Converter derives cross rates through the snapshot base.
// It holds no mutable state and is safe for concurrent use.
type Converter struct {
	cfg      Config
	provider RateProvider
	now      func() time.Time
}

// NewConverter creates a Converter. cfg is captured at construction time.
func NewConverter(cfg Config, provider RateProvider) *Converter {
	if cfg.Base == "" {
		cfg.Base = DefaultBase
	}
	return &Converter{
		cfg:      cfg,
		provider: provider,
		now:      time.Now,
	}
}

// Convert converts amount from origin to destination using a freshly fetched snapshot.
// Either a complete Conversion or an *Error is returned, never both.
func (c *Converter) Convert(
	ctx context.Context,
	origin, destination string,
	amount float64,
) (*Conversion, error) {
	snapshot, err := c.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	sourceRate, ok := snapshot.Rate(origin)
	if !ok {
		return nil, UnknownCurrency(origin)
	}
	targetRate, ok := snapshot.Rate(destination)
	if !ok {
		return nil, UnknownCurrency(destination)
	}

	rate := sourceRate / targetRate
	return &Conversion{
		OriginCurrency:      origin,
		DestinationCurrency: destination,
		OriginAmount:        amount,
		Rate:                rate,
		DestinationAmount:   amount * rate,
		ConversionTime:      c.now().UTC(),
	}, nil
}

// fetchSnapshot checks the credential before the provider is ever called.
func (c *Converter) fetchSnapshot(ctx context.Context) (*RateSnapshot, error) {
	if c.cfg.AccessKey == "" {
		return nil, MissingCredential()
	}
	snapshot, err := c.provider.Latest(ctx, RateRequest{
		AccessKey: c.cfg.AccessKey,
		Base:      c.cfg.Base,
	})
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, ProviderMalformed(errors.New("empty rate snapshot"))
	}
	return snapshot, nil
}

var _ Service = (*Converter)(nil)
