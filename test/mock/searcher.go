// Package mock provides test doubles for the offer search pipeline.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/flight-search/flight-offer-aggregator/internal/domain"
)

// Searcher is a configurable implementation of domain.OfferSearcher.
// It supports delays, errors and canned responses for testing
// timeouts and failure mapping end to end.
type Searcher struct {
	name   string
	offers []domain.RawOffer
	err    error
	delay  time.Duration

	mu        sync.Mutex
	callCount int
	requests  []domain.SearchRequest
}

// NewSearcher creates a mock searcher with the given provider name.
func NewSearcher(name string) *Searcher {
	return &Searcher{name: name}
}

// WithOffers configures the searcher to return the given raw offers.
func (s *Searcher) WithOffers(offers []domain.RawOffer) *Searcher {
	s.offers = offers
	return s
}

// WithError configures the searcher to fail with err.
func (s *Searcher) WithError(err error) *Searcher {
	s.err = err
	return s
}

// WithDelay makes every call wait d before answering, unless the context ends first.
func (s *Searcher) WithDelay(d time.Duration) *Searcher {
	s.delay = d
	return s
}

// Name implements domain.OfferSearcher.
func (s *Searcher) Name() string {
	return s.name
}

// Search implements domain.OfferSearcher.
func (s *Searcher) Search(ctx context.Context, req domain.SearchRequest) ([]domain.RawOffer, error) {
	s.mu.Lock()
	s.callCount++
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.offers, nil
}

// CallCount returns the number of times Search was called.
func (s *Searcher) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// Requests returns a copy of every request received, in call order.
func (s *Searcher) Requests() []domain.SearchRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.SearchRequest(nil), s.requests...)
}

// Reset clears the recorded calls.
func (s *Searcher) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCount = 0
	s.requests = nil
}

// Ensure Searcher implements domain.OfferSearcher at compile time.
var _ domain.OfferSearcher = (*Searcher)(nil)

// SampleOffers returns count one-way offers JFK to LAX whose totals decrease
// with the index, so a correct ranking reverses them.
func SampleOffers(count int) []domain.RawOffer {
	offers := make([]domain.RawOffer, count)
	base := time.Date(2025, 12, 15, 8, 0, 0, 0, time.UTC)

	for i := 0; i < count; i++ {
		dep := base.Add(time.Duration(i) * time.Hour)
		arr := dep.Add(6 * time.Hour)
		offers[i] = domain.RawOffer{
			ID: domain.StringPtr(fmt.Sprintf("%d", i+1)),
			Price: &domain.RawPrice{
				Total:    domain.StringPtr(fmt.Sprintf("%d.00", 500-i*50)),
				Currency: domain.StringPtr("USD"),
			},
			Itineraries: []domain.RawItinerary{{
				Duration: domain.StringPtr("PT6H"),
				Segments: []domain.RawSegment{{
					Departure: &domain.RawEndpoint{
						IATACode: domain.StringPtr("JFK"),
						Terminal: domain.StringPtr("4"),
						At:       domain.StringPtr(dep.Format("2006-01-02T15:04:05")),
					},
					Arrival: &domain.RawEndpoint{
						IATACode: domain.StringPtr("LAX"),
						At:       domain.StringPtr(arr.Format("2006-01-02T15:04:05")),
					},
					CarrierCode: domain.StringPtr("DL"),
					Number:      domain.StringPtr(fmt.Sprintf("%d", 100+i)),
					Aircraft:    &domain.RawAircraft{Code: domain.StringPtr("321")},
					Duration:    domain.StringPtr("PT6H"),
				}},
			}},
		}
	}
	return offers
}
