package app

import (
	"log/slog"

	"github.com/amirasaad/exchange/pkg/config"
	"github.com/amirasaad/exchange/pkg/eventbus"
	"github.com/amirasaad/exchange/pkg/exchange"
	"github.com/amirasaad/exchange/pkg/repository"
	"github.com/amirasaad/exchange/pkg/service/auth"
	exchangesvc "github.com/amirasaad/exchange/pkg/service/exchange"
	"github.com/amirasaad/exchange/pkg/service/user"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Deps holds the infrastructure the services are built from.
type Deps struct {
	// DB is the connection Uow runs on. It is closed by the initializer on shutdown.
	DB        *gorm.DB
	Uow       repository.UnitOfWork
	Converter exchange.Service
	EventBus  eventbus.Bus
	// LimiterStorage backs the HTTP rate limiter. nil means in-memory.
	LimiterStorage fiber.Storage
	Logger         *slog.Logger
}

type App struct {
	Deps            *Deps
	Config          *config.App
	AuthService     *auth.Service
	UserService     *user.Service
	ExchangeService *exchangesvc.Service
}

func New(deps *Deps, cfg *config.App) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	if deps.EventBus != nil {
		app.setupEventBus()
	}

	app.AuthService = auth.New(deps.Uow, cfg.Jwt, deps.Logger)
	app.UserService = user.New(deps.Uow, deps.Logger)
	app.ExchangeService = exchangesvc.New(deps.Converter, deps.Uow, deps.EventBus, deps.Logger)
	return app
}
