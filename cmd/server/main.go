package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/amirasaad/exchange/cmd/server/swagger"
	"github.com/amirasaad/exchange/infra/initializer"
	"github.com/amirasaad/exchange/pkg/app"
	"github.com/amirasaad/exchange/pkg/config"
	"github.com/amirasaad/exchange/webapi"
	log "github.com/charmbracelet/log"
)

// @title Exchange API
// @version 1.0.0
// @description Currency conversion API with per-user conversion history
// @contact.name API Support
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := initializer.Shutdown(deps); err != nil {
			deps.Logger.Error("Failed to release dependencies", "error", err)
		}
	}()
	logger := deps.Logger

	a := app.New(deps, cfg)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := initializer.SeedAdmin(ctx, a.UserService, cfg.Admin, logger); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	fiberApp := webapi.SetupApp(a)
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down server")
		_ = fiberApp.Shutdown()
	}()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)
	return fiberApp.Listen(addr)
}
