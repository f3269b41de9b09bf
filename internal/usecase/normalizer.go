package usecase

import "github.com/flight-search/flight-offer-aggregator/internal/domain"

// NormalizeOffer converts one raw provider offer into a ParsedOffer.
//
// It never fails: any field missing from the raw offer is nil in the result.
// Itineraries and segments keep provider order and count; nothing is filtered,
// reordered or deduplicated here.
func NormalizeOffer(raw domain.RawOffer) domain.ParsedOffer {
	parsed := domain.ParsedOffer{
		ID: raw.ID,
		Price: domain.Price{
			Total:    raw.PriceTotal(),
			Currency: raw.PriceCurrency(),
		},
		Itineraries: make([]domain.Itinerary, 0, len(raw.Itineraries)),
	}

	for _, it := range raw.Itineraries {
		parsed.Itineraries = append(parsed.Itineraries, normalizeItinerary(it))
	}

	return parsed
}

// NormalizeOffers normalizes every raw offer, preserving provider order.
func NormalizeOffers(raw []domain.RawOffer) []domain.ParsedOffer {
	result := make([]domain.ParsedOffer, 0, len(raw))
	for _, r := range raw {
		result = append(result, NormalizeOffer(r))
	}
	return result
}

func normalizeItinerary(it domain.RawItinerary) domain.Itinerary {
	segments := make([]domain.Segment, 0, len(it.Segments))
	for _, s := range it.Segments {
		segments = append(segments, normalizeSegment(s))
	}

	return domain.Itinerary{
		Duration: it.Duration,
		Segments: segments,
	}
}

func normalizeSegment(s domain.RawSegment) domain.Segment {
	return domain.Segment{
		Departure:    normalizeEndpoint(s.Departure),
		Arrival:      normalizeEndpoint(s.Arrival),
		Carrier:      s.CarrierCode,
		FlightNumber: s.Number,
		Aircraft:     s.Aircraft.EquipmentCode(),
		Duration:     s.Duration,
	}
}

func normalizeEndpoint(e *domain.RawEndpoint) domain.Endpoint {
	return domain.Endpoint{
		Airport:  e.Airport(),
		Time:     e.Time(),
		Terminal: e.TerminalName(),
	}
}
