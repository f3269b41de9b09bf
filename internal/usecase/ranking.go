// Package usecase provides the business logic for flight offer search.
package usecase

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/flight-search/flight-offer-aggregator/internal/domain"
)

// SortOffersByPrice orders offers by total price ascending.
//
// Totals are parsed as base-10 decimals, so "99.99" and "99.990" compare equal and no
// binary rounding is involved. The sort is stable: offers with equal totals keep
// their input order.
//
// Behavior:
//   - Returns an empty slice for empty input
//   - Fails with *domain.MalformedPriceError if any total is missing or not a number;
//     nothing is coerced to zero and nothing is dropped
//   - Does NOT mutate the input slice
func SortOffersByPrice(offers []domain.ParsedOffer) ([]domain.ParsedOffer, error) {
	if len(offers) == 0 {
		return []domain.ParsedOffer{}, nil
	}

	type keyed struct {
		offer domain.ParsedOffer
		total decimal.Decimal
	}

	items := make([]keyed, len(offers))
	for i, o := range offers {
		total, err := parseTotal(o)
		if err != nil {
			return nil, err
		}
		items[i] = keyed{offer: o, total: total}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].total.LessThan(items[j].total)
	})

	result := make([]domain.ParsedOffer, len(items))
	for i, it := range items {
		result[i] = it.offer
	}
	return result, nil
}

// RankOffers normalizes raw offers and sorts them by price.
func RankOffers(raw []domain.RawOffer) ([]domain.ParsedOffer, error) {
	return SortOffersByPrice(NormalizeOffers(raw))
}

func parseTotal(o domain.ParsedOffer) (decimal.Decimal, error) {
	if o.Price.Total == nil {
		return decimal.Decimal{}, domain.NewMalformedPriceError(o.ID, nil, nil)
	}
	total, err := decimal.NewFromString(*o.Price.Total)
	if err != nil {
		return decimal.Decimal{}, domain.NewMalformedPriceError(o.ID, o.Price.Total, err)
	}
	return total, nil
}
