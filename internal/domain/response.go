package domain

// SearchResponse is what front ends return for a successful search.
// An empty Offers slice is a valid "no results" outcome, not a failure.
type SearchResponse struct {
	// SearchCriteria echoes the request that produced these offers
	SearchCriteria SearchCriteriaResponse `json:"search_criteria"`

	// Metadata contains information about the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Offers are sorted by total price, cheapest first
	Offers []ParsedOffer `json:"offers"`
}

// SearchCriteriaResponse represents the search request in the response.
type SearchCriteriaResponse struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Adults        int    `json:"adults"`
	MaxResults    int    `json:"max_results"`
	Currency      string `json:"currency"`
	NonStop       bool   `json:"non_stop"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// TotalResults is the number of offers returned
	TotalResults int `json:"total_results"`

	// Provider is the name of the search provider that was queried
	Provider string `json:"provider,omitempty"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`

	// RequestID correlates the response with server logs
	RequestID string `json:"request_id,omitempty"`
}

// NewSearchResponse creates a SearchResponse for req. A nil offers slice becomes empty.
func NewSearchResponse(req SearchRequest, offers []ParsedOffer, metadata SearchMetadata) SearchResponse {
	if offers == nil {
		offers = []ParsedOffer{}
	}
	metadata.TotalResults = len(offers)

	return SearchResponse{
		SearchCriteria: SearchCriteriaResponse{
			Origin:        req.Origin,
			Destination:   req.Destination,
			DepartureDate: req.DepartureDateString(),
			ReturnDate:    req.ReturnDateString(),
			Adults:        req.Adults,
			MaxResults:    req.MaxResults,
			Currency:      req.Currency,
			NonStop:       req.NonStop,
		},
		Metadata: metadata,
		Offers:   offers,
	}
}
