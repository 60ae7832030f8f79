package initializer

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	infra_eventbus "github.com/amirasaad/exchange/infra/eventbus"
	"github.com/amirasaad/exchange/infra/storage"
	"github.com/amirasaad/exchange/pkg/app"
	"github.com/amirasaad/exchange/pkg/config"
	"github.com/amirasaad/exchange/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Port: 3000},
		Log:    &config.Log{Format: "text", Level: int(slog.LevelError)},
		DB:     &config.DB{Url: "sqlite://file::memory:"},
		Jwt:    &config.Jwt{Secret: "secret", Expiry: time.Hour},
		ExchangeRatesApi: &config.ExchangeRatesApi{
			AccessKey: "key",
			ApiUrl:    "http://localhost:1",
			Base:      "eur",
		},
		RateLimit: &config.RateLimit{MaxRequests: 10, Window: time.Second},
		Redis:     &config.Redis{KeyPrefix: "test:"},
		Kafka:     &config.Kafka{Topic: "exchange.events"},
		Admin: &config.Admin{
			Username: "admin",
			Email:    "admin@exchange.com",
			Password: "Pw1@exchange",
		},
	}
}

func TestInitializeDependencies_Defaults(t *testing.T) {
	deps, err := InitializeDependencies(testConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Shutdown(deps) })

	assert.NotNil(t, deps.Uow)
	assert.NotNil(t, deps.Converter)
	assert.NotNil(t, deps.Logger)
	assert.IsType(t, &infra_eventbus.MemoryEventBus{}, deps.EventBus)
	assert.Nil(t, deps.LimiterStorage)
}

func TestInitializeDependencies_KafkaAndRedis(t *testing.T) {
	cfg := testConfig()
	cfg.Kafka.Brokers = []string{"localhost:9092"}
	cfg.Redis.URL = "redis://localhost:6379/0"

	deps, err := InitializeDependencies(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Shutdown(deps) })

	assert.IsType(t, &infra_eventbus.KafkaEventBus{}, deps.EventBus)
	assert.IsType(t, &storage.RedisStorage{}, deps.LimiterStorage)
}

func TestInitializeDependencies_Errors(t *testing.T) {
	testCases := []struct {
		desc   string
		mutate func(*config.App)
	}{
		{"missing database url", func(c *config.App) { c.DB.Url = "" }},
		{"invalid redis url", func(c *config.App) { c.Redis.URL = "nope" }},
		{"blank kafka topic", func(c *config.App) {
			c.Kafka.Brokers = []string{"localhost:9092"}
			c.Kafka.Topic = " "
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			cfg := testConfig()
			tc.mutate(cfg)
			_, err := InitializeDependencies(cfg)
			assert.Error(t, err)
		})
	}
}

func TestShutdown_ClosesDatabase(t *testing.T) {
	deps, err := InitializeDependencies(testConfig())
	require.NoError(t, err)
	require.NotNil(t, deps.DB)
	sqlDB, err := deps.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Ping())

	require.NoError(t, Shutdown(deps))
	assert.ErrorContains(t, sqlDB.Ping(), "database is closed")
}

func TestShutdown_Empty(t *testing.T) {
	assert.NoError(t, Shutdown(&app.Deps{}))
}

func TestSeedAdmin(t *testing.T) {
	cfg := testConfig()
	deps, err := InitializeDependencies(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Shutdown(deps) })
	deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	a := app.New(deps, cfg)
	ctx := context.Background()

	require.NoError(t, SeedAdmin(ctx, a.UserService, cfg.Admin, deps.Logger))
	// Second run finds the existing admin.
	require.NoError(t, SeedAdmin(ctx, a.UserService, cfg.Admin, deps.Logger))

	users, err := a.UserService.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, "admin@exchange.com", users[0].Email)
	assert.True(t, utils.CheckPasswordHash("Pw1@exchange", users[0].HashedPassword))
}

func TestSetupLogger_FallsBackToText(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logger := setupLogger(&config.Log{Format: "yaml"})
	assert.NotNil(t, logger)
	assert.Same(t, logger, slog.Default())
}
