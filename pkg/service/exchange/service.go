// Package exchange records conversions against the user who requested them.
package exchange

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/exchange/pkg/domain/events"
	"github.com/amirasaad/exchange/pkg/domain/user"
	"github.com/amirasaad/exchange/pkg/dto"
	"github.com/amirasaad/exchange/pkg/eventbus"
	"github.com/amirasaad/exchange/pkg/exchange"
	"github.com/amirasaad/exchange/pkg/repository"
	conversionrepo "github.com/amirasaad/exchange/pkg/repository/conversion"
	userrepo "github.com/amirasaad/exchange/pkg/repository/user"
	"github.com/google/uuid"
)

type Service struct {
	converter exchange.Service
	uow       repository.UnitOfWork
	bus       eventbus.Bus
	logger    *slog.Logger
}

// New creates a Service. bus may be nil, in which case no events are emitted.
func New(
	converter exchange.Service,
	uow repository.UnitOfWork,
	bus eventbus.Bus,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		converter: converter,
		uow:       uow,
		bus:       bus,
		logger:    logger,
	}
}

// Convert delegates to the converter. Its errors are returned untranslated.
func (s *Service) Convert(
	ctx context.Context,
	from, to string,
	amount float64,
) (*exchange.Conversion, error) {
	return s.converter.Convert(ctx, from, to, amount)
}

// Record stores conv in the history of the user named username and returns
// the stored record. ConversionRecorded is emitted after the commit; a failed
// emit is logged and does not undo the record.
func (s *Service) Record(
	ctx context.Context,
	conv *exchange.Conversion,
	username string,
) (record *dto.ConversionRead, err error) {
	log := s.logger.With("context", "Record", "username", username)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		u, err := users.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if u == nil {
			return user.ErrUserNotFound
		}

		conversions, err := repository.Get[conversionrepo.Repository](uow)
		if err != nil {
			return err
		}
		record, err = conversions.Create(ctx, &dto.ConversionCreate{
			UserID:              u.ID,
			OriginCurrency:      conv.OriginCurrency,
			DestinationCurrency: conv.DestinationCurrency,
			Amount:              conv.OriginAmount,
			Rate:                conv.Rate,
			ConversionTime:      conv.ConversionTime,
		})
		return err
	})
	if err != nil {
		log.Error("Record failed", "error", err)
		return nil, err
	}
	log.Debug("Conversion recorded", "conversionID", record.ID)

	if s.bus != nil {
		if emitErr := s.bus.Emit(ctx, events.ConversionRecorded{
			ID:                  uuid.New(),
			ConversionID:        record.ID,
			UserID:              record.UserID,
			Username:            username,
			OriginCurrency:      record.OriginCurrency,
			DestinationCurrency: record.DestinationCurrency,
			OriginAmount:        record.OriginAmount,
			DestinationAmount:   record.DestinationAmount,
			Rate:                record.Rate,
			ConversionTime:      record.ConversionTime,
			Timestamp:           time.Now().UTC(),
		}); emitErr != nil {
			log.Warn("Failed to emit ConversionRecorded", "error", emitErr)
		}
	}
	return record, nil
}

// ConvertAndRecord converts and, on success, records the result for username.
func (s *Service) ConvertAndRecord(
	ctx context.Context,
	from, to string,
	amount float64,
	username string,
) (*dto.ConversionRead, error) {
	conv, err := s.Convert(ctx, from, to, amount)
	if err != nil {
		return nil, err
	}
	return s.Record(ctx, conv, username)
}

// History lists the conversions of the user with userID, oldest first.
// ErrUserNotFound is returned for unknown users.
func (s *Service) History(
	ctx context.Context,
	userID uuid.UUID,
) (history []*dto.ConversionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		u, err := users.Get(ctx, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return user.ErrUserNotFound
		}
		conversions, err := repository.Get[conversionrepo.Repository](uow)
		if err != nil {
			return err
		}
		history, err = conversions.ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return history, nil
}

// HistoryByUsername resolves username and lists that user's conversions.
func (s *Service) HistoryByUsername(
	ctx context.Context,
	username string,
) ([]*dto.ConversionRead, error) {
	var userID uuid.UUID
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		u, err := users.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if u == nil {
			return user.ErrUserNotFound
		}
		userID = u.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.History(ctx, userID)
}
