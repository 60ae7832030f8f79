package initializer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/amirasaad/exchange/infra"
	infra_eventbus "github.com/amirasaad/exchange/infra/eventbus"
	"github.com/amirasaad/exchange/infra/provider/exchangeratesapi"
	infra_repository "github.com/amirasaad/exchange/infra/repository"
	"github.com/amirasaad/exchange/infra/storage"
	"github.com/amirasaad/exchange/pkg/app"
	"github.com/amirasaad/exchange/pkg/config"
	"github.com/amirasaad/exchange/pkg/domain/user"
	"github.com/amirasaad/exchange/pkg/eventbus"
	"github.com/amirasaad/exchange/pkg/exchange"
	usersvc "github.com/amirasaad/exchange/pkg/service/user"
)

// InitializeDependencies opens the database, applies migrations and builds
// the converter, event bus and limiter storage described by cfg.
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	deps = &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	deps.DB = db
	opened := deps
	defer func() {
		if err != nil {
			_ = Shutdown(opened)
		}
	}()
	if err = infra.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	deps.Uow = infra_repository.NewUoW(db)

	deps.Converter = exchange.NewLoggingService(
		exchange.NewConverter(
			exchange.Config{
				AccessKey: cfg.ExchangeRatesApi.AccessKey,
				Base:      cfg.ExchangeRatesApi.Base,
			},
			exchangeratesapi.New(cfg.ExchangeRatesApi, logger),
		),
		logger,
	)
	if cfg.ExchangeRatesApi.AccessKey == "" {
		logger.Warn("No exchange rates api access key configured, conversions will fail")
	}

	var bus eventbus.Bus
	if cfg.Kafka != nil && len(cfg.Kafka.Brokers) > 0 {
		bus, err = infra_eventbus.NewWithKafka(cfg.Kafka, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create Kafka event bus: %w", err)
		}
	} else {
		bus = infra_eventbus.NewWithMemory(logger)
	}
	deps.EventBus = bus

	if cfg.Redis != nil && cfg.Redis.URL != "" {
		var store *storage.RedisStorage
		store, err = storage.NewRedisStorage(cfg.Redis.URL, cfg.Redis.KeyPrefix, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis limiter storage: %w", err)
		}
		deps.LimiterStorage = store
		logger.Info("Using Redis for rate limiter storage")
	}

	return deps, nil
}

// Shutdown releases the connections held by deps, the database last.
func Shutdown(deps *app.Deps) error {
	var errs []error
	if c, ok := deps.EventBus.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	if c, ok := deps.LimiterStorage.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	if deps.DB != nil {
		sqlDB, err := deps.DB.DB()
		if err == nil {
			err = sqlDB.Close()
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SeedAdmin creates the admin account unless a user with its username exists.
func SeedAdmin(
	ctx context.Context,
	users *usersvc.Service,
	cfg *config.Admin,
	logger *slog.Logger,
) error {
	log := logger.With("context", "SeedAdmin", "username", cfg.Username)
	_, err := users.GetByUsername(ctx, cfg.Username)
	switch {
	case err == nil:
		log.Debug("Admin user already exists")
		return nil
	case !errors.Is(err, user.ErrUserNotFound):
		log.Error("Failed to look up admin user", "error", err)
		return err
	}

	if _, err := users.Create(ctx, cfg.Username, cfg.Email, cfg.Password); err != nil {
		log.Error("Failed to seed admin user", "error", err)
		return err
	}
	log.Info("Admin user seeded")
	return nil
}
