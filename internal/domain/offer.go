// Package domain contains the core business entities and rules for the flight offer aggregator.
// These entities are provider-agnostic and form the foundation upon which all other components are built.
package domain

import (
	"bytes"
	"encoding/json"
)

// RawOffer is one flight offer as returned by the search provider.
// Every nested object and scalar is optional; a missing field decodes to nil.
// Use the nil-safe accessor methods instead of dereferencing fields directly.
type RawOffer struct {
	ID          *string        `json:"id,omitempty"`
	Price       *RawPrice      `json:"price,omitempty"`
	Itineraries []RawItinerary `json:"itineraries,omitempty"`
}

// RawPrice is the price block of a raw offer.
type RawPrice struct {
	// Total is a decimal string such as "123.45"
	Total    *string `json:"total,omitempty"`
	Currency *string `json:"currency,omitempty"`
}

// UnmarshalJSON accepts the total as a JSON string or number. Any other JSON value
// is kept as its literal text, so the offer fails price parsing on its own instead
// of failing the whole response.
func (p *RawPrice) UnmarshalJSON(data []byte) error {
	var aux struct {
		Total    json.RawMessage `json:"total"`
		Currency *string         `json:"currency"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	p.Currency = aux.Currency
	p.Total = nil

	total := bytes.TrimSpace(aux.Total)
	switch {
	case len(total) == 0 || bytes.Equal(total, []byte("null")):
	case total[0] == '"':
		var s string
		if err := json.Unmarshal(total, &s); err != nil {
			return err
		}
		p.Total = &s
	default:
		s := string(total)
		p.Total = &s
	}
	return nil
}

// RawItinerary is one directional journey of a raw offer.
type RawItinerary struct {
	// Duration is an ISO-8601 duration such as "PT5H30M"
	Duration *string      `json:"duration,omitempty"`
	Segments []RawSegment `json:"segments,omitempty"`
}

// RawSegment is a single flight leg of a raw itinerary.
type RawSegment struct {
	Departure   *RawEndpoint `json:"departure,omitempty"`
	Arrival     *RawEndpoint `json:"arrival,omitempty"`
	CarrierCode *string      `json:"carrierCode,omitempty"`
	Number      *string      `json:"number,omitempty"`
	Aircraft    *RawAircraft `json:"aircraft,omitempty"`
	Duration    *string      `json:"duration,omitempty"`
}

// RawEndpoint is the departure or arrival point of a raw segment.
type RawEndpoint struct {
	IATACode *string `json:"iataCode,omitempty"`
	Terminal *string `json:"terminal,omitempty"`
	At       *string `json:"at,omitempty"`
}

// RawAircraft identifies the equipment flying a raw segment.
type RawAircraft struct {
	Code *string `json:"code,omitempty"`
}

// PriceTotal returns the offer's total price, or nil if absent.
func (o RawOffer) PriceTotal() *string {
	if o.Price == nil {
		return nil
	}
	return o.Price.Total
}

// PriceCurrency returns the offer's price currency, or nil if absent.
func (o RawOffer) PriceCurrency() *string {
	if o.Price == nil {
		return nil
	}
	return o.Price.Currency
}

// Airport returns the endpoint's IATA code, or nil.
func (e *RawEndpoint) Airport() *string {
	if e == nil {
		return nil
	}
	return e.IATACode
}

// Time returns the endpoint's local date-time, or nil.
func (e *RawEndpoint) Time() *string {
	if e == nil {
		return nil
	}
	return e.At
}

// TerminalName returns the endpoint's terminal, or nil.
func (e *RawEndpoint) TerminalName() *string {
	if e == nil {
		return nil
	}
	return e.Terminal
}

// EquipmentCode returns the aircraft code, or nil.
func (a *RawAircraft) EquipmentCode() *string {
	if a == nil {
		return nil
	}
	return a.Code
}

// ParsedOffer is the canonical, flat representation of one offer.
// Optional fields are pointers and always serialize, as null when absent.
type ParsedOffer struct {
	ID          *string     `json:"id"`
	Price       Price       `json:"price"`
	Itineraries []Itinerary `json:"itineraries"`
}

// Price is the total price of an offer.
type Price struct {
	Total    *string `json:"total"`
	Currency *string `json:"currency"`
}

// Itinerary is one directional journey. Index 0 is the outbound journey,
// index 1 (when present) is the return journey.
type Itinerary struct {
	Duration *string   `json:"duration"`
	Segments []Segment `json:"segments"`
}

// Segment is a single flight leg.
type Segment struct {
	Departure    Endpoint `json:"departure"`
	Arrival      Endpoint `json:"arrival"`
	Carrier      *string  `json:"carrier"`
	FlightNumber *string  `json:"flight_number"`
	Aircraft     *string  `json:"aircraft"`
	Duration     *string  `json:"duration"`
}

// Endpoint is where a segment departs from or arrives at.
type Endpoint struct {
	Airport  *string `json:"airport"`
	Time     *string `json:"time"`
	Terminal *string `json:"terminal"`
}

// IsReturn reports whether the itinerary at index i is the return journey.
func IsReturn(i int) bool {
	return i > 0
}

// StringPtr returns a pointer to s. Handy for building offers in tests and fixtures.
func StringPtr(s string) *string {
	return &s
}

// StringValue dereferences p, returning fallback when p is nil.
func StringValue(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}
