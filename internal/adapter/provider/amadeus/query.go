package amadeus

import (
	"net/url"
	"strconv"

	"github.com/flight-search/flight-offer-aggregator/internal/domain"
)

// buildQuery encodes req as search endpoint parameters.
// returnDate is only present for round trips.
func buildQuery(req domain.SearchRequest) string {
	q := url.Values{}
	q.Set("originLocationCode", req.Origin)
	q.Set("destinationLocationCode", req.Destination)
	q.Set("departureDate", req.DepartureDateString())
	if req.IsRoundTrip() {
		q.Set("returnDate", req.ReturnDateString())
	}
	q.Set("adults", strconv.Itoa(req.Adults))
	q.Set("max", strconv.Itoa(req.MaxResults))
	q.Set("currencyCode", req.Currency)
	q.Set("nonStop", strconv.FormatBool(req.NonStop))
	return q.Encode()
}
