package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-search/flight-offer-aggregator/internal/domain"
)

// Outcome classifies how a search invocation ended.
type Outcome string

// Search outcomes reported to an Observer.
const (
	OutcomeSuccess Outcome = "success"
	OutcomeEmpty   Outcome = "empty"
	OutcomeFailure Outcome = "failure"
)

// Observer is notified once per search invocation. Implementations must be safe for concurrent use.
type Observer interface {
	ObserveSearch(provider string, outcome Outcome, elapsed time.Duration, offers int)
}

// OfferSearchUseCase defines the interface for the offer ranking pipeline.
type OfferSearchUseCase interface {
	// Search calls the provider once, normalizes every offer and returns them cheapest first.
	// An empty slice with a nil error means the provider found no offers; a non-nil error
	// means the call failed (auth, transport) or an offer price could not be parsed.
	Search(ctx context.Context, req domain.SearchRequest) ([]domain.ParsedOffer, error)

	// Provider returns the name of the underlying search provider.
	Provider() string
}

// offerSearchUseCase implements OfferSearchUseCase on top of a single OfferSearcher.
type offerSearchUseCase struct {
	searcher domain.OfferSearcher
	observer Observer
}

// Option configures the use case.
type Option func(*offerSearchUseCase)

// WithObserver registers an Observer for search outcomes.
func WithObserver(o Observer) Option {
	return func(uc *offerSearchUseCase) {
		uc.observer = o
	}
}

// NewOfferSearchUseCase creates the pipeline around the given searcher.
func NewOfferSearchUseCase(searcher domain.OfferSearcher, opts ...Option) OfferSearchUseCase {
	uc := &offerSearchUseCase{
		searcher: searcher,
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Provider implements OfferSearchUseCase.Provider.
func (uc *offerSearchUseCase) Provider() string {
	return uc.searcher.Name()
}

// Search implements OfferSearchUseCase.Search.
func (uc *offerSearchUseCase) Search(ctx context.Context, req domain.SearchRequest) ([]domain.ParsedOffer, error) {
	start := time.Now()
	provider := uc.searcher.Name()
	log := zerolog.Ctx(ctx).With().
		Str("provider", provider).
		Str("origin", req.Origin).
		Str("destination", req.Destination).
		Logger()

	raw, err := uc.searcher.Search(ctx, req)
	if err != nil {
		uc.observer.ObserveSearch(provider, OutcomeFailure, time.Since(start), 0)
		log.Error().Err(err).Msg("Offer search failed")
		return nil, fmt.Errorf("search offers: %w", err)
	}

	if len(raw) == 0 {
		uc.observer.ObserveSearch(provider, OutcomeEmpty, time.Since(start), 0)
		log.Info().Msg("Provider returned no offers")
		return []domain.ParsedOffer{}, nil
	}

	ranked, err := RankOffers(raw)
	if err != nil {
		uc.observer.ObserveSearch(provider, OutcomeFailure, time.Since(start), 0)
		log.Error().Err(err).Int("raw_offers", len(raw)).Msg("Offer ranking failed")
		return nil, fmt.Errorf("rank offers: %w", err)
	}

	uc.observer.ObserveSearch(provider, OutcomeSuccess, time.Since(start), len(ranked))
	log.Info().Int("offers", len(ranked)).Dur("elapsed", time.Since(start)).Msg("Offers ranked")
	return ranked, nil
}

type nopObserver struct{}

func (nopObserver) ObserveSearch(string, Outcome, time.Duration, int) {}

// Ensure offerSearchUseCase implements OfferSearchUseCase at compile time.
var _ OfferSearchUseCase = (*offerSearchUseCase)(nil)
