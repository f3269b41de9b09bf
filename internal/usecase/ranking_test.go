package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-offer-aggregator/internal/domain"
)

// createRankingTestOffer creates a parsed offer with the given id and total.
func createRankingTestOffer(id, total string) domain.ParsedOffer {
	return domain.ParsedOffer{
		ID: domain.StringPtr(id),
		Price: domain.Price{
			Total:    domain.StringPtr(total),
			Currency: domain.StringPtr("USD"),
		},
		Itineraries: []domain.Itinerary{},
	}
}

// createRawTestOffer creates a raw offer with the given id and total.
func createRawTestOffer(id, total string) domain.RawOffer {
	return domain.RawOffer{
		ID: domain.StringPtr(id),
		Price: &domain.RawPrice{
			Total:    domain.StringPtr(total),
			Currency: domain.StringPtr("USD"),
		},
	}
}

func offerIDs(offers []domain.ParsedOffer) []string {
	ids := make([]string, len(offers))
	for i, o := range offers {
		ids[i] = domain.StringValue(o.ID, "")
	}
	return ids
}

func offerTotals(offers []domain.ParsedOffer) []string {
	totals := make([]string, len(offers))
	for i, o := range offers {
		totals[i] = domain.StringValue(o.Price.Total, "")
	}
	return totals
}

// =====================================================
// SortOffersByPrice Tests
// =====================================================

func TestSortOffersByPrice_Empty(t *testing.T) {
	result, err := SortOffersByPrice(nil)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestSortOffersByPrice_StableForEqualTotals(t *testing.T) {
	offers := []domain.ParsedOffer{
		createRankingTestOffer("a", "250.00"),
		createRankingTestOffer("b", "99.99"),
		createRankingTestOffer("c", "99.99"),
		createRankingTestOffer("d", "500.00"),
	}

	result, err := SortOffersByPrice(offers)

	require.NoError(t, err)
	assert.Equal(t, []string{"99.99", "99.99", "250.00", "500.00"}, offerTotals(result))
	assert.Equal(t, []string{"b", "c", "a", "d"}, offerIDs(result))
}

func TestSortOffersByPrice_DecimalComparison(t *testing.T) {
	offers := []domain.ParsedOffer{
		createRankingTestOffer("a", "1000"),
		createRankingTestOffer("b", "999.999"),
		createRankingTestOffer("c", "99.9"),
		createRankingTestOffer("d", "99.90"),
		createRankingTestOffer("e", "0.01"),
	}

	result, err := SortOffersByPrice(offers)

	require.NoError(t, err)
	// Lexical ordering would put "1000" before "99.9"
	assert.Equal(t, []string{"e", "c", "d", "b", "a"}, offerIDs(result))
}

func TestSortOffersByPrice_AlreadySortedUnchanged(t *testing.T) {
	offers := []domain.ParsedOffer{
		createRankingTestOffer("a", "10.00"),
		createRankingTestOffer("b", "20.00"),
		createRankingTestOffer("c", "30.00"),
	}

	result, err := SortOffersByPrice(offers)

	require.NoError(t, err)
	assert.Equal(t, offers, result)

	again, err := SortOffersByPrice(result)
	require.NoError(t, err)
	assert.Equal(t, result, again)
}

func TestSortOffersByPrice_ReverseSortedInverted(t *testing.T) {
	offers := []domain.ParsedOffer{
		createRankingTestOffer("c", "30.00"),
		createRankingTestOffer("b", "20.00"),
		createRankingTestOffer("a", "10.00"),
	}

	result, err := SortOffersByPrice(offers)

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, offerIDs(result))
}

func TestSortOffersByPrice_DoesNotMutateInput(t *testing.T) {
	offers := []domain.ParsedOffer{
		createRankingTestOffer("b", "20.00"),
		createRankingTestOffer("a", "10.00"),
	}

	_, err := SortOffersByPrice(offers)

	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, offerIDs(offers))
}

func TestSortOffersByPrice_MalformedTotal(t *testing.T) {
	tests := []struct {
		name      string
		offers    []domain.ParsedOffer
		wantID    string
		wantTotal string
	}{
		{
			name: "N/A total",
			offers: []domain.ParsedOffer{
				createRankingTestOffer("1", "120.00"),
				createRankingTestOffer("2", "N/A"),
			},
			wantID:    "2",
			wantTotal: "N/A",
		},
		{
			name: "empty total",
			offers: []domain.ParsedOffer{
				createRankingTestOffer("1", ""),
			},
			wantID:    "1",
			wantTotal: "",
		},
		{
			name: "missing total",
			offers: []domain.ParsedOffer{
				{ID: domain.StringPtr("9")},
			},
			wantID:    "9",
			wantTotal: "<missing>",
		},
		{
			name: "NaN total",
			offers: []domain.ParsedOffer{
				createRankingTestOffer("5", "NaN"),
			},
			wantID:    "5",
			wantTotal: "NaN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SortOffersByPrice(tt.offers)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, domain.IsMalformedPrice(err))

			var priceErr *domain.MalformedPriceError
			require.ErrorAs(t, err, &priceErr)
			assert.Equal(t, tt.wantID, priceErr.OfferID)
			assert.Equal(t, tt.wantTotal, priceErr.Total)
		})
	}
}

// =====================================================
// RankOffers Tests
// =====================================================

func TestRankOffers_KeepsEveryOffer(t *testing.T) {
	raw := []domain.RawOffer{
		createRawTestOffer("1", "250.00"),
		createRawTestOffer("2", "99.99"),
		createRawTestOffer("3", "99.99"),
		createRawTestOffer("4", "500.00"),
	}

	result, err := RankOffers(raw)

	require.NoError(t, err)
	require.Len(t, result, len(raw))
	assert.Equal(t, []string{"99.99", "99.99", "250.00", "500.00"}, offerTotals(result))
	assert.Equal(t, []string{"2", "3", "1", "4"}, offerIDs(result))
}

func TestRankOffers_MalformedPriceFails(t *testing.T) {
	raw := []domain.RawOffer{
		createRawTestOffer("1", "250.00"),
		createRawTestOffer("2", "N/A"),
	}

	result, err := RankOffers(raw)

	assert.Nil(t, result)
	assert.True(t, domain.IsMalformedPrice(err))
}
