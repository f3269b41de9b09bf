package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchResponse(t *testing.T) {
	ret := time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)
	req := SearchRequest{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC),
		ReturnDate:    &ret,
		Adults:        2,
		MaxResults:    5,
		Currency:      "EUR",
		NonStop:       true,
	}

	t.Run("nil offers become empty slice", func(t *testing.T) {
		resp := NewSearchResponse(req, nil, SearchMetadata{TotalResults: 99, SearchTimeMs: 12})

		require.NotNil(t, resp.Offers)
		assert.Empty(t, resp.Offers)
		assert.Equal(t, 0, resp.Metadata.TotalResults)
		assert.Equal(t, int64(12), resp.Metadata.SearchTimeMs)

		body, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"offers":[]`)
	})

	t.Run("criteria echoed", func(t *testing.T) {
		offers := []ParsedOffer{{ID: StringPtr("1")}, {ID: StringPtr("2")}}
		resp := NewSearchResponse(req, offers, SearchMetadata{Provider: "amadeus"})

		assert.Equal(t, 2, resp.Metadata.TotalResults)
		assert.Equal(t, "amadeus", resp.Metadata.Provider)
		assert.Equal(t, SearchCriteriaResponse{
			Origin:        "JFK",
			Destination:   "LAX",
			DepartureDate: "2025-12-15",
			ReturnDate:    "2025-12-20",
			Adults:        2,
			MaxResults:    5,
			Currency:      "EUR",
			NonStop:       true,
		}, resp.SearchCriteria)
	})
}
