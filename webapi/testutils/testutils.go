// Package testutils provides an end-to-end suite that serves the full API
// over an in-memory SQLite database and a stub exchange rates server.
package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	"github.com/amirasaad/exchange/infra"
	infra_eventbus "github.com/amirasaad/exchange/infra/eventbus"
	"github.com/amirasaad/exchange/infra/provider/exchangeratesapi"
	infrarepo "github.com/amirasaad/exchange/infra/repository"
	"github.com/amirasaad/exchange/pkg/app"
	"github.com/amirasaad/exchange/pkg/config"
	"github.com/amirasaad/exchange/pkg/dto"
	"github.com/amirasaad/exchange/pkg/exchange"
	"github.com/amirasaad/exchange/webapi"
	"github.com/amirasaad/exchange/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// Password is the password of every user created by CreateTestUser.
const Password = "password123"

// RatesBody is served by the stub provider unless overridden with SetRates.
const RatesBody = `{"success":true,"base":"EUR","rates":{"BRL":6.17,"USD":1.22}}`

// E2ETestSuite provides a test suite with a real database and a stub rate provider.
type E2ETestSuite struct {
	suite.Suite
	App       *app.App
	Bus       *infra_eventbus.MemoryEventBus
	Cfg       *config.App
	fiberApp  *fiber.App
	rates     *httptest.Server
	ratesBody atomic.Value
	status    atomic.Int32
	calls     atomic.Int32
}

// Config returns the configuration the suite runs with.
func Config(ratesURL string) *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "localhost", Port: 3000},
		Log:    &config.Log{Format: "text"},
		DB:     &config.DB{Url: "sqlite://file::memory:"},
		Jwt: &config.Jwt{
			Secret:   "test-secret",
			Issuer:   "exchange-api",
			Audience: "exchange-api",
			Expiry:   time.Hour,
		},
		ExchangeRatesApi: &config.ExchangeRatesApi{
			AccessKey: "test-key",
			ApiUrl:    ratesURL,
			Base:      "eur",
		},
		RateLimit: &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
		Redis:     &config.Redis{},
		Kafka:     &config.Kafka{},
		Admin:     &config.Admin{Username: "admin", Email: "admin@exchange.com", Password: "Pw1@exchange"},
	}
}

func (s *E2ETestSuite) SetupSuite() {
	s.rates = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		s.calls.Add(1)
		if status := int(s.status.Load()); status != 0 {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, s.ratesBody.Load().(string))
	}))
}

func (s *E2ETestSuite) TearDownSuite() {
	if s.rates != nil {
		s.rates.Close()
	}
}

// SetupTest builds a fresh application and database for every test.
func (s *E2ETestSuite) SetupTest() {
	s.ratesBody.Store(RatesBody)
	s.status.Store(0)
	s.calls.Store(0)

	s.Rebuild(Config(s.rates.URL))
}

// Rebuild replaces the application with one built from cfg over a new database.
func (s *E2ETestSuite) Rebuild(cfg *config.App) {
	s.Cfg = cfg
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := infra.NewDBConnection(s.Cfg.DB, s.Cfg.Env)
	s.Require().NoError(err)
	s.Require().NoError(infra.Migrate(db))

	s.Bus = infra_eventbus.NewWithMemory(logger)
	s.App = app.New(&app.Deps{
		DB:  db,
		Uow: infrarepo.NewUoW(db),
		Converter: exchange.NewConverter(
			exchange.Config{AccessKey: s.Cfg.ExchangeRatesApi.AccessKey, Base: s.Cfg.ExchangeRatesApi.Base},
			exchangeratesapi.NewWithClient(s.rates.URL, s.rates.Client(), logger),
		),
		EventBus: s.Bus,
		Logger:   logger,
	}, s.Cfg)
	s.fiberApp = webapi.SetupApp(s.App)
}

// SetRates replaces the body served by the stub provider.
func (s *E2ETestSuite) SetRates(body string) { s.ratesBody.Store(body) }

// FailRates makes the stub provider answer with status.
func (s *E2ETestSuite) FailRates(status int) { s.status.Store(int32(status)) }

// RateCalls returns the number of requests the stub provider received.
func (s *E2ETestSuite) RateCalls() int { return int(s.calls.Load()) }

// FiberApp exposes the application under test.
func (s *E2ETestSuite) FiberApp() *fiber.App { return s.fiberApp }

// MakeRequest is a helper for making HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.fiberApp.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// DecodeResponse decodes a success envelope, unmarshalling its data into out.
func (s *E2ETestSuite) DecodeResponse(resp *http.Response, out any) common.Response {
	var raw struct {
		common.Response
		Data json.RawMessage `json:"data"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&raw))
	if out != nil {
		s.Require().NoError(json.Unmarshal(raw.Data, out))
	}
	return raw.Response
}

// DecodeProblem decodes a problem details response.
func (s *E2ETestSuite) DecodeProblem(resp *http.Response) common.ProblemDetails {
	var pd common.ProblemDetails
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&pd))
	return pd
}

// CreateTestUser stores a user with a random username directly through the service.
func (s *E2ETestSuite) CreateTestUser() *dto.UserRead {
	suffix := uuid.NewString()[:8]
	u, err := s.App.UserService.Create(
		s.T().Context(),
		"testuser_"+suffix,
		fmt.Sprintf("test_%s@example.com", suffix),
		Password,
	)
	s.Require().NoError(err)
	return u
}

// LoginUser makes an actual HTTP request to login and returns the JWT token
func (s *E2ETestSuite) LoginUser(u *dto.UserRead) string {
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, u.Username, Password)
	resp := s.MakeRequest(http.MethodPost, "/api/v1/authenticate", body, "")
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	var token struct {
		Token string `json:"token"`
	}
	s.DecodeResponse(resp, &token)
	s.Require().NotEmpty(token.Token)
	return token.Token
}
