package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match them with errors.Is.
var (
	// ErrConfiguration indicates required settings (such as provider credentials) are missing.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidRequest indicates the caller supplied malformed search input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrAuth indicates the search provider rejected our credentials.
	ErrAuth = errors.New("provider authentication failed")

	// ErrTransport indicates the search call itself failed (network, rejected or malformed exchange).
	ErrTransport = errors.New("provider call failed")

	// ErrMalformedPrice indicates an offer carried a total price that is not a decimal number.
	ErrMalformedPrice = errors.New("malformed offer price")
)

// ProviderError wraps a failure reported by the external search provider.
type ProviderError struct {
	// Provider is the name of the search provider
	Provider string

	// Kind is ErrAuth or ErrTransport
	Kind error

	// StatusCode is the HTTP status returned by the provider, 0 if none was received
	StatusCode int

	// Err is the underlying cause
	Err error

	// Retryable reports whether repeating the call may succeed
	Retryable bool
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %v (status %d): %v", e.Provider, e.kind(), e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v: %v", e.Provider, e.kind(), e.Err)
}

// Unwrap exposes both the error kind and the underlying cause to errors.Is / errors.As.
func (e *ProviderError) Unwrap() []error {
	return []error{e.kind(), e.Err}
}

func (e *ProviderError) kind() error {
	if e.Kind == nil {
		return ErrTransport
	}
	return e.Kind
}

// NewTransportError creates a non-retryable transport failure.
func NewTransportError(provider string, status int, err error) *ProviderError {
	return &ProviderError{Provider: provider, Kind: ErrTransport, StatusCode: status, Err: err}
}

// NewRetryableTransportError creates a transport failure worth retrying
// (network errors, throttling, provider-side 5xx).
func NewRetryableTransportError(provider string, status int, err error) *ProviderError {
	return &ProviderError{Provider: provider, Kind: ErrTransport, StatusCode: status, Err: err, Retryable: true}
}

// NewAuthError creates an authentication failure. Auth failures are never retried.
func NewAuthError(provider string, status int, err error) *ProviderError {
	return &ProviderError{Provider: provider, Kind: ErrAuth, StatusCode: status, Err: err}
}

// MalformedPriceError reports an offer whose total cannot be parsed as a number.
type MalformedPriceError struct {
	OfferID string
	Total   string
	Err     error
}

func (e *MalformedPriceError) Error() string {
	return fmt.Sprintf("offer %q: total %q is not a decimal number", e.OfferID, e.Total)
}

// Unwrap returns ErrMalformedPrice along with the parse error.
func (e *MalformedPriceError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedPrice}
	}
	return []error{ErrMalformedPrice, e.Err}
}

// NewMalformedPriceError builds a MalformedPriceError. A nil id or total is reported as "<missing>".
func NewMalformedPriceError(id, total *string, err error) *MalformedPriceError {
	return &MalformedPriceError{
		OfferID: StringValue(id, "<missing>"),
		Total:   StringValue(total, "<missing>"),
		Err:     err,
	}
}

// ValidationError is a field-level input error raised before any provider call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap lets errors.Is(err, ErrInvalidRequest) match.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsInvalidRequest checks if the error is an invalid request error.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsAuth checks if the error is a provider authentication failure.
func IsAuth(err error) bool {
	return errors.Is(err, ErrAuth)
}

// IsTransport checks if the error is a provider transport failure.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsMalformedPrice checks if the error is caused by an unparsable offer price.
func IsMalformedPrice(err error) bool {
	return errors.Is(err, ErrMalformedPrice)
}

// IsConfiguration checks if the error is a configuration error.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsRetryable reports whether err is a ProviderError marked retryable.
func IsRetryable(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Retryable
}
