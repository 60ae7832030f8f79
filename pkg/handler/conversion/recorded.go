// Package conversion handles events raised when conversions are recorded.
package conversion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/exchange/pkg/domain/events"
	"github.com/amirasaad/exchange/pkg/eventbus"
)

// HandleRecorded writes an audit line for every ConversionRecorded event.
func HandleRecorded(logger *slog.Logger) eventbus.HandlerFunc {
	return func(_ context.Context, e events.Event) error {
		log := logger.With(
			"handler", "conversion.HandleRecorded",
			"event_type", e.Type(),
		)

		var cr events.ConversionRecorded
		switch evt := e.(type) {
		case events.ConversionRecorded:
			cr = evt
		case *events.ConversionRecorded:
			cr = *evt
		default:
			log.Error("unexpected event", "event_type", fmt.Sprintf("%T", e))
			return errors.New("unexpected event type")
		}

		log.Info("Conversion recorded",
			"conversion_id", cr.ConversionID,
			"username", cr.Username,
			"from", cr.OriginCurrency,
			"to", cr.DestinationCurrency,
			"amount", cr.OriginAmount,
			"rate", cr.Rate,
			"result", cr.DestinationAmount,
		)
		return nil
	}
}
