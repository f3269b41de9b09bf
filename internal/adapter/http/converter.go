package http

import (
	"time"

	"github.com/flight-search/flight-offer-aggregator/internal/domain"
)

// ToSearchInput converts a validated request body into builder input.
func ToSearchInput(req *SearchOffersRequest) domain.SearchInput {
	return domain.SearchInput{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		RoundTrip:     req.IsRoundTrip(),
		Adults:        string(req.Adults),
		MaxResults:    string(req.MaxResults),
		Currency:      req.Currency,
		NonStop:       req.NonStop,
	}
}

// ToSearchResponse wraps ranked offers with the echoed criteria and timing metadata.
func ToSearchResponse(req domain.SearchRequest, offers []domain.ParsedOffer, provider, requestID string, elapsed time.Duration) domain.SearchResponse {
	return domain.NewSearchResponse(req, offers, domain.SearchMetadata{
		Provider:     provider,
		SearchTimeMs: elapsed.Milliseconds(),
		RequestID:    requestID,
	})
}
