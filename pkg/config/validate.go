package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Validate reports every structural problem in the configuration at once.
// Missing secrets are not errors here: the services that need them refuse
// to work and log why.
func (a *App) Validate() error {
	var result *multierror.Error

	if a.Server == nil || a.Server.Port <= 0 || a.Server.Port > 65535 {
		result = multierror.Append(result, errors.New("server port must be between 1 and 65535"))
	}
	if a.DB == nil || a.DB.Url == "" {
		result = multierror.Append(result, errors.New("database url is required"))
	}
	if a.Jwt != nil && a.Jwt.Expiry <= 0 {
		result = multierror.Append(result, errors.New("jwt expiry must be positive"))
	}
	if a.ExchangeRatesApi != nil {
		if u, err := url.Parse(a.ExchangeRatesApi.ApiUrl); err != nil || u.Scheme == "" || u.Host == "" {
			result = multierror.Append(result,
				fmt.Errorf("exchange rates api url %q is not an absolute url", a.ExchangeRatesApi.ApiUrl))
		}
		if strings.TrimSpace(a.ExchangeRatesApi.Base) == "" {
			result = multierror.Append(result, errors.New("exchange rates api base currency is required"))
		}
		if a.ExchangeRatesApi.HTTPTimeout < 0 {
			result = multierror.Append(result, errors.New("exchange rates api http timeout must not be negative"))
		}
	}
	if a.RateLimit != nil && (a.RateLimit.MaxRequests <= 0 || a.RateLimit.Window <= 0) {
		result = multierror.Append(result, errors.New("rate limit requires positive max requests and window"))
	}
	if a.Log != nil && a.Log.Format != "json" && a.Log.Format != "text" {
		result = multierror.Append(result, fmt.Errorf("log format %q must be json or text", a.Log.Format))
	}

	return result.ErrorOrNil()
}
