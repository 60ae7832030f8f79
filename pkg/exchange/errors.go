package exchange

import (
	"errors"
	"fmt"
)

// ErrorKind classifies conversion failures.
type ErrorKind int

const (
	KindMissingCredential ErrorKind = iota + 1
	KindUnknownCurrency
	KindProviderUnreachable
	KindProviderError
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingCredential:
		return "missing_credential"
	case KindUnknownCurrency:
		return "unknown_currency"
	case KindProviderUnreachable:
		return "provider_unreachable"
	case KindProviderError:
		return "provider_error"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrMissingCredential   = &Error{Kind: KindMissingCredential}
	ErrUnknownCurrency     = &Error{Kind: KindUnknownCurrency}
	ErrProviderUnreachable = &Error{Kind: KindProviderUnreachable}
	ErrProviderError       = &Error{Kind: KindProviderError}
)

// Error is the single error type returned by the converter and its providers.
// Only the fields relevant to Kind are set: Currency for KindUnknownCurrency,
// StatusCode and Reason for provider failures. A zero StatusCode means the
// failure carried no status (transport error or unreadable body).
type Error struct {
	Kind       ErrorKind
	Currency   string
	StatusCode int
	Reason     string
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingCredential:
		return "no exchange rates api access key provided by configuration"
	case KindUnknownCurrency:
		return fmt.Sprintf("the currency %s is not available in service", e.Currency)
	case KindProviderUnreachable:
		if e.Err != nil {
			return "failed to request exchange rates api: " + e.Err.Error()
		}
		return "failed to request exchange rates api"
	case KindProviderError:
		if e.HasStatusCode() {
			return "error response from exchange rates api: " + e.Reason
		}
		if e.Err != nil {
			return "invalid response from exchange rates api: " + e.Err.Error()
		}
		return "invalid response from exchange rates api: " + e.Reason
	default:
		return "exchange error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// HasStatusCode reports whether the provider answered with a status code.
func (e *Error) HasStatusCode() bool {
	return e.StatusCode != 0
}

// MissingCredential is returned when no access key is configured.
func MissingCredential() *Error {
	return &Error{Kind: KindMissingCredential}
}

// UnknownCurrency is returned when code is neither the base nor in the snapshot.
func UnknownCurrency(code string) *Error {
	return &Error{Kind: KindUnknownCurrency, Currency: code}
}

// ProviderUnreachable wraps a transport failure.
func ProviderUnreachable(err error) *Error {
	return &Error{Kind: KindProviderUnreachable, Err: err}
}

// ProviderStatus is returned when the provider answers with a non-success status.
func ProviderStatus(statusCode int, reason string) *Error {
	return &Error{Kind: KindProviderError, StatusCode: statusCode, Reason: reason}
}

// ProviderMalformed is returned when the provider body cannot be used.
func ProviderMalformed(err error) *Error {
	return &Error{Kind: KindProviderError, Err: err}
}

// StatusCode returns the provider status code carried by err, if any.
func StatusCode(err error) (int, bool) {
	var exErr *Error
	if !errors.As(err, &exErr) {
		return 0, false
	}
	if exErr.Kind != KindProviderUnreachable && exErr.Kind != KindProviderError {
		return 0, false
	}
	return exErr.StatusCode, exErr.HasStatusCode()
}
