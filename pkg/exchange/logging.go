package exchange

import (
	"context"
	"log/slog"
	"time"
)

type loggingService struct {
	next   Service
	logger *slog.Logger
}

// NewLoggingService wraps next so every conversion is logged with its outcome and duration.
func NewLoggingService(next Service, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &loggingService{
		next:   next,
		logger: logger.With("context", "exchange"),
	}
}

func (s *loggingService) Convert(
	ctx context.Context,
	origin, destination string,
	amount float64,
) (conv *Conversion, err error) {
	defer func(begin time.Time) {
		if err != nil {
			s.logger.Error(
				"Convert failed",
				"from", origin,
				"to", destination,
				"amount", amount,
				"took", time.Since(begin),
				"error", err,
			)
			return
		}
		s.logger.Info(
			"Convert",
			"from", origin,
			"to", destination,
			"amount", amount,
			"rate", conv.Rate,
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.Convert(ctx, origin, destination, amount)
}
