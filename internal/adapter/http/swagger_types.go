package http

// These types describe the search response for swag. Pointer fields in
// domain.ParsedOffer serialize as null when the provider omitted them.

// SwaggerSearchResponse represents the search API response.
// @Description Flight offers sorted by total price, cheapest first
type SwaggerSearchResponse struct {
	SearchCriteria SwaggerSearchCriteria `json:"search_criteria"`
	Metadata       SwaggerSearchMetadata `json:"metadata"`
	Offers         []SwaggerOffer        `json:"offers"`
}

// SwaggerSearchCriteria echoes the normalized request.
// @Description Normalized search criteria
type SwaggerSearchCriteria struct {
	Origin        string `json:"origin" example:"JFK"`
	Destination   string `json:"destination" example:"LAX"`
	DepartureDate string `json:"departure_date" example:"2025-12-15"`
	ReturnDate    string `json:"return_date,omitempty" example:"2025-12-20"`
	Adults        int    `json:"adults" example:"1"`
	MaxResults    int    `json:"max_results" example:"10"`
	Currency      string `json:"currency" example:"USD"`
	NonStop       bool   `json:"non_stop" example:"false"`
}

// SwaggerSearchMetadata contains metadata about the search execution.
// @Description Metadata about the search execution
type SwaggerSearchMetadata struct {
	TotalResults int    `json:"total_results" example:"2"`
	Provider     string `json:"provider,omitempty" example:"amadeus"`
	SearchTimeMs int64  `json:"search_time_ms" example:"842"`
	RequestID    string `json:"request_id,omitempty" example:"3f2b8c1e-7a4d-4e8b-9a61-0c5d2f1e9b7a"`
}

// SwaggerOffer is one normalized flight offer.
// @Description A flight offer with its itineraries
type SwaggerOffer struct {
	ID          *string            `json:"id" example:"1"`
	Price       SwaggerPrice       `json:"price"`
	Itineraries []SwaggerItinerary `json:"itineraries"`
}

// SwaggerPrice is the offer's grand total.
// @Description Offer price as a decimal string
type SwaggerPrice struct {
	Total    *string `json:"total" example:"99.99"`
	Currency *string `json:"currency" example:"USD"`
}

// SwaggerItinerary is one journey. The first is outbound, the second the return.
// @Description Outbound or return journey
type SwaggerItinerary struct {
	Duration *string          `json:"duration" example:"PT6H10M"`
	Segments []SwaggerSegment `json:"segments"`
}

// SwaggerSegment is a single flight leg.
// @Description One flight leg
type SwaggerSegment struct {
	Departure    SwaggerEndpoint `json:"departure"`
	Arrival      SwaggerEndpoint `json:"arrival"`
	Carrier      *string         `json:"carrier" example:"DL"`
	FlightNumber *string         `json:"flight_number" example:"123"`
	Aircraft     *string         `json:"aircraft" example:"321"`
	Duration     *string         `json:"duration" example:"PT6H10M"`
}

// SwaggerEndpoint is a departure or arrival point.
// @Description Airport, local time and terminal
type SwaggerEndpoint struct {
	Airport  *string `json:"airport" example:"JFK"`
	Time     *string `json:"time" example:"2025-12-15T08:00:00"`
	Terminal *string `json:"terminal" example:"4"`
}
