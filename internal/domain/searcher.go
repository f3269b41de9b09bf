package domain

import "context"

//go:generate mockgen -source=searcher.go -destination=mock_searcher.go -package=domain

// OfferSearcher is the external search capability.
// Implementations return zero or more raw offers, or a *ProviderError whose kind is
// ErrAuth or ErrTransport. A nil or empty slice with a nil error means "no offers".
type OfferSearcher interface {
	// Name returns the provider's identifier (e.g., "amadeus").
	Name() string

	// Search performs one provider call for the given request.
	// The return date is sent only when req carries one.
	Search(ctx context.Context, req SearchRequest) ([]RawOffer, error)
}

// NoOfferCauses lists the usual reasons a provider answers with zero offers.
var NoOfferCauses = []string{
	"Invalid airport codes",
	"No flights available for the selected dates",
	"Departure date is in the past",
	"Non-stop filter is too restrictive",
}
