// Package http provides the HTTP handler layer for the flight offer search API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/flight-search/flight-offer-aggregator/internal/domain"
)

// Form limits applied before any provider call.
const (
	MinAdults     = 1
	MaxAdults     = 9
	MinMaxResults = 1
	MaxMaxResults = 250
)

// SupportedCurrencies are the price currencies the search form offers.
var SupportedCurrencies = []string{"USD", "EUR", "GBP", "CAD", "AUD", "JPY"}

// FormValue is a form field that arrives either as a JSON number or a JSON string.
// It keeps the raw text so conversion errors can be reported per field.
type FormValue string

// UnmarshalJSON accepts numbers, strings and null.
func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(strings.TrimSpace(s))
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("expected a number or string, got %s", data)
		}
		*v = FormValue(n.String())
	}
	return nil
}

// SearchOffersRequest represents the request body for an offer search.
type SearchOffersRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin" example:"JFK"`

	// Destination is the IATA code of the arrival airport (e.g., "LAX")
	Destination string `json:"destination" example:"LAX"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate" example:"2025-12-15"`

	// ReturnDate is the return date in YYYY-MM-DD format (round trips only)
	ReturnDate string `json:"returnDate,omitempty" example:"2025-12-20"`

	// RoundTrip selects a round trip. When omitted it follows whether returnDate is set.
	RoundTrip *bool `json:"roundTrip,omitempty"`

	// Adults is the number of adult passengers (1-9), as a number or string
	Adults FormValue `json:"adults,omitempty" swaggertype:"integer" example:"1"`

	// MaxResults caps the number of offers (1-250), as a number or string
	MaxResults FormValue `json:"maxResults,omitempty" swaggertype:"integer" example:"10"`

	// Currency is the ISO-4217 price currency (USD, EUR, GBP, CAD, AUD, JPY)
	Currency string `json:"currency,omitempty" example:"USD"`

	// NonStop restricts results to direct flights
	NonStop bool `json:"nonStop,omitempty"`
}

// IsRoundTrip reports whether the request asks for a return journey.
func (r *SearchOffersRequest) IsRoundTrip() bool {
	if r.RoundTrip != nil {
		return *r.RoundTrip
	}
	return strings.TrimSpace(r.ReturnDate) != ""
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Unwrap lets errors.Is(err, domain.ErrInvalidRequest) match.
func (v *ValidationErrors) Unwrap() error {
	return domain.ErrInvalidRequest
}

// Add adds a validation error. Only the first message per field is kept.
func (v *ValidationErrors) Add(field, message string) {
	for _, e := range v.Errors {
		if e.Field == field {
			return
		}
	}
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// AddDomain records a domain validation failure under its field. Nil is ignored.
func (v *ValidationErrors) AddDomain(err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		v.Add(vErr.Field, vErr.Message)
	}
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate runs the search form checks. today is the caller's current date and
// bounds the departure date. Values are normalized in place.
func (r *SearchOffersRequest) Validate(today time.Time) error {
	errs := &ValidationErrors{}

	r.Origin = r.validateAirport(errs, "origin", r.Origin)
	r.Destination = r.validateAirport(errs, "destination", r.Destination)

	departure, ok := r.validateDate(errs, "departureDate", r.DepartureDate)
	if ok {
		errs.AddDomain(domain.ValidateDepartureNotPast(departure, today))
	}

	if r.IsRoundTrip() {
		if strings.TrimSpace(r.ReturnDate) == "" {
			errs.Add("returnDate", "returnDate is required for round trips")
		} else if ret, retOK := r.validateDate(errs, "returnDate", r.ReturnDate); retOK && ok && ret.Before(departure) {
			errs.Add("returnDate", "return date must not precede departure date")
		}
	}

	r.validateRange(errs, "adults", r.Adults, MinAdults, MaxAdults)
	r.validateRange(errs, "maxResults", r.MaxResults, MinMaxResults, MaxMaxResults)
	r.validateCurrency(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchOffersRequest) validateAirport(errs *ValidationErrors, field, value string) string {
	code := strings.ToUpper(strings.TrimSpace(value))
	errs.AddDomain(domain.ValidateAirportCode(field, code))
	return code
}

func (r *SearchOffersRequest) validateDate(errs *ValidationErrors, field, value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		errs.Add(field, field+" is required")
		return time.Time{}, false
	}
	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return time.Time{}, false
	}
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		errs.Add(field, field+" is not a valid date")
		return time.Time{}, false
	}
	return t, true
}

// validateRange checks an optional integer field. Empty values take the domain default later.
func (r *SearchOffersRequest) validateRange(errs *ValidationErrors, field string, value FormValue, min, max int) {
	if value == "" {
		return
	}
	n, err := strconv.Atoi(string(value))
	if err != nil {
		errs.Add(field, field+" must be a whole number")
		return
	}
	if n < min || n > max {
		errs.Add(field, fmt.Sprintf("%s must be between %d and %d", field, min, max))
	}
}

func (r *SearchOffersRequest) validateCurrency(errs *ValidationErrors) {
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
	if r.Currency == "" {
		return
	}
	for _, c := range SupportedCurrencies {
		if r.Currency == c {
			return
		}
	}
	errs.Add("currency", "currency must be one of: "+strings.Join(SupportedCurrencies, ", "))
}
