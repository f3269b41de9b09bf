package usecase

import (
	"context"

	"github.com/flight-search/flight-offer-aggregator/internal/domain"
)

// Pending is a search running in the background.
// Front ends that must stay responsive start one with SearchAsync and collect
// the outcome on their own goroutine with Wait or by selecting on Done.
type Pending struct {
	done   chan struct{}
	offers []domain.ParsedOffer
	err    error
}

// SearchAsync starts uc.Search on a new goroutine and returns immediately.
func SearchAsync(ctx context.Context, uc OfferSearchUseCase, req domain.SearchRequest) *Pending {
	p := &Pending{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.offers, p.err = uc.Search(ctx, req)
	}()
	return p
}

// Done is closed once the search has finished.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the search finishes and returns its result.
func (p *Pending) Wait() ([]domain.ParsedOffer, error) {
	<-p.done
	return p.offers, p.err
}
