// Package exchangeratesapi fetches rate snapshots from exchangeratesapi.io.
package exchangeratesapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/amirasaad/exchange/pkg/config"
	"github.com/amirasaad/exchange/pkg/exchange"
)

// DefaultURL is the public endpoint host.
const DefaultURL = "https://api.exchangeratesapi.io"

// latestResponse is the subset of the /v1/latest body the converter needs.
// encoding/json matches field names case-insensitively.
type latestResponse struct {
	Success *bool              `json:"success"`
	Base    string             `json:"base"`
	Date    string             `json:"date"`
	Rates   map[string]float64 `json:"rates"`
	Error   *struct {
		Code int    `json:"code"`
		Type string `json:"type"`
		Info string `json:"info"`
	} `json:"error"`
}

// Provider implements exchange.RateProvider against the /v1/latest endpoint.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a Provider from config. A zero HTTPTimeout keeps the transport default.
func New(cfg *config.ExchangeRatesApi, logger *slog.Logger) *Provider {
	return NewWithClient(cfg.ApiUrl, &http.Client{Timeout: cfg.HTTPTimeout}, logger)
}

// NewWithClient creates a Provider that sends requests through client.
func NewWithClient(baseURL string, client *http.Client, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
		logger:     logger.With("provider", "exchangeratesapi"),
	}
}

// Latest performs a single GET for the latest rates relative to req.Base.
func (p *Provider) Latest(ctx context.Context, req exchange.RateRequest) (*exchange.RateSnapshot, error) {
	endpoint, err := p.latestURL(req)
	if err != nil {
		return nil, exchange.ProviderUnreachable(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exchange.ProviderUnreachable(err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		p.logger.Error("Failed to request exchange rates", "error", err)
		return nil, exchange.ProviderUnreachable(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reason := reasonPhrase(resp)
		p.logger.Warn("Exchange rates api returned an error status",
			"status", resp.StatusCode, "reason", reason)
		return nil, exchange.ProviderStatus(resp.StatusCode, reason)
	}

	var body latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		p.logger.Error("Failed to decode exchange rates response", "error", err)
		return nil, exchange.ProviderMalformed(fmt.Errorf("decode response: %w", err))
	}
	if body.Success != nil && !*body.Success {
		return nil, exchange.ProviderMalformed(errors.New(describeFailure(body)))
	}

	base := body.Base
	if base == "" {
		base = strings.ToUpper(req.Base)
	}
	rates := body.Rates
	if rates == nil {
		rates = map[string]float64{}
	}
	p.logger.Debug("Fetched exchange rates", "base", base, "date", body.Date, "count", len(rates))
	return &exchange.RateSnapshot{Base: base, Rates: rates}, nil
}

func (p *Provider) latestURL(req exchange.RateRequest) (string, error) {
	u, err := url.Parse(p.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	u = u.JoinPath("v1", "latest")
	q := u.Query()
	q.Set("access_key", req.AccessKey)
	base := req.Base
	if base == "" {
		base = exchange.DefaultBase
	}
	q.Set("base", base)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// reasonPhrase extracts the text after the numeric code in resp.Status.
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}

func describeFailure(body latestResponse) string {
	if body.Error == nil {
		return "request was not successful"
	}
	if body.Error.Info != "" {
		return body.Error.Info
	}
	if body.Error.Type != "" {
		return body.Error.Type
	}
	return "error code " + strconv.Itoa(body.Error.Code)
}

var _ exchange.RateProvider = (*Provider)(nil)
