package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format used by callers and by the provider.
const DateLayout = "2006-01-02"

// Default values applied when the caller leaves a field empty.
const (
	DefaultAdults     = 1
	DefaultMaxResults = 10
	DefaultCurrency   = "USD"
)

// SearchRequest is the validated parameter set for one offer search.
// It is a value object: build it with BuildSearchRequest and pass it by value.
type SearchRequest struct {
	// Origin is the origin location code (e.g., "JFK"), uppercased
	Origin string

	// Destination is the destination location code (e.g., "LAX"), uppercased
	Destination string

	// DepartureDate is the outbound calendar date
	DepartureDate time.Time

	// ReturnDate is set only for round trips
	ReturnDate *time.Time

	// Adults is the number of adult passengers
	Adults int

	// MaxResults caps the number of offers requested from the provider
	MaxResults int

	// Currency is the ISO-4217 code prices are requested in
	Currency string

	// NonStop restricts results to itineraries without layovers
	NonStop bool
}

// IsRoundTrip reports whether the request carries a return date.
func (r SearchRequest) IsRoundTrip() bool {
	return r.ReturnDate != nil
}

// DepartureDateString returns the departure date as YYYY-MM-DD.
func (r SearchRequest) DepartureDateString() string {
	return r.DepartureDate.Format(DateLayout)
}

// ReturnDateString returns the return date as YYYY-MM-DD, or "" for one-way trips.
func (r SearchRequest) ReturnDateString() string {
	if r.ReturnDate == nil {
		return ""
	}
	return r.ReturnDate.Format(DateLayout)
}

// SearchInput holds raw, caller-supplied values as typed into a prompt or form.
type SearchInput struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string

	// RoundTrip decides whether ReturnDate is used at all
	RoundTrip bool

	Adults     string
	MaxResults string
	Currency   string
	NonStop    bool
}

// BuildSearchRequest turns raw caller input into a SearchRequest.
//
// Location codes are trimmed and uppercased but not otherwise checked; front ends that
// want stricter codes call ValidateAirportCode. When RoundTrip is false the return date
// is dropped entirely. Empty counts and currency fall back to their defaults.
func BuildSearchRequest(in SearchInput) (SearchRequest, error) {
	req := SearchRequest{
		Origin:      strings.ToUpper(strings.TrimSpace(in.Origin)),
		Destination: strings.ToUpper(strings.TrimSpace(in.Destination)),
		NonStop:     in.NonStop,
	}

	departure, err := parseDate("departureDate", in.DepartureDate)
	if err != nil {
		return SearchRequest{}, err
	}
	req.DepartureDate = departure

	if in.RoundTrip {
		ret, err := parseDate("returnDate", in.ReturnDate)
		if err != nil {
			return SearchRequest{}, err
		}
		if ret.Before(departure) {
			return SearchRequest{}, NewValidationError("returnDate", "return date must not precede departure date")
		}
		req.ReturnDate = &ret
	}

	if req.Adults, err = parsePositiveInt("adults", in.Adults, DefaultAdults); err != nil {
		return SearchRequest{}, err
	}
	if req.MaxResults, err = parsePositiveInt("maxResults", in.MaxResults, DefaultMaxResults); err != nil {
		return SearchRequest{}, err
	}

	req.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	if req.Currency == "" {
		req.Currency = DefaultCurrency
	}

	return req, nil
}

func parseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, NewValidationError(field, field+" is required")
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, NewValidationError(field, field+" must be in YYYY-MM-DD format")
	}
	return t, nil
}

func parsePositiveInt(field, value string, fallback int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, NewValidationError(field, field+" must be a whole number")
	}
	if n < 1 {
		return 0, NewValidationError(field, field+" must be at least 1")
	}
	return n, nil
}

// airportCodeRegex matches three-letter location codes.
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidateAirportCode rejects a location code that is not exactly three letters.
// field names the form field the code came from.
func ValidateAirportCode(field, code string) error {
	if code == "" {
		return NewValidationError(field, field+" is required")
	}
	if !airportCodeRegex.MatchString(code) {
		return NewValidationError(field, "airport codes must be 3 letters (e.g., JFK, LAX)")
	}
	return nil
}

// ValidateDepartureNotPast rejects departure dates before the calendar day of now.
func ValidateDepartureNotPast(departure, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if departure.Before(today) {
		return NewValidationError("departureDate", "departure date must not be in the past")
	}
	return nil
}
