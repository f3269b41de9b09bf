// Package presenter renders ranked offers and search failures for a human reader.
package presenter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/flight-search/flight-offer-aggregator/internal/domain"
)

// Missing is printed wherever the provider omitted a value.
const Missing = "N/A"

// Format names a renderer.
type Format string

// Supported output formats.
const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Renderer writes a ranked offer list to w.
type Renderer interface {
	Render(w io.Writer, offers []domain.ParsedOffer) error
}

// ForFormat returns the renderer for name. Matching is case-insensitive.
func ForFormat(name string) (Renderer, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatText, "":
		return Text{}, nil
	case FormatTable:
		return Table{}, nil
	case FormatJSON:
		return JSON{Indent: "  "}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (want text, table or json)", name)
}

// Text prints every offer with its journeys and segments, one field per line.
type Text struct{}

// Render implements Renderer.
func (Text) Render(w io.Writer, offers []domain.ParsedOffer) error {
	pw := &printer{w: w}
	for i, offer := range offers {
		if i > 0 {
			pw.line("%s", strings.Repeat("-", 50))
		}
		pw.line("")
		pw.line("%d. Flight %s", i+1, value(offer.ID))
		pw.line("Price: %s %s", value(offer.Price.Total), value(offer.Price.Currency))

		for j, itin := range offer.Itineraries {
			pw.line("")
			pw.line("  %s Journey (Duration: %s)", journey(j), value(itin.Duration))
			for k, seg := range itin.Segments {
				pw.line("    Segment %d:", k+1)
				pw.line("      %s", flightCode(seg))
				pw.line("      %s → %s", value(seg.Departure.Airport), value(seg.Arrival.Airport))
				pw.line("      Depart: %s", value(seg.Departure.Time))
				pw.line("      Arrive: %s", value(seg.Arrival.Time))
				pw.line("      Duration: %s", value(seg.Duration))
			}
		}
	}
	return pw.err
}

// Table prints one row per segment, grouped by offer rank.
type Table struct{}

// Render implements Renderer.
func (Table) Render(w io.Writer, offers []domain.ParsedOffer) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Price", "Journey", "Flight", "Route", "Depart", "Arrive", "Duration"})
	table.SetBorders(tablewriter.Border{Left: false, Top: false, Right: false, Bottom: false})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetRowLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)

	for i, offer := range offers {
		rank := strconv.Itoa(i + 1)
		price := value(offer.Price.Total) + " " + value(offer.Price.Currency)

		if len(offer.Itineraries) == 0 {
			table.Append([]string{rank, price, Missing, Missing, Missing, Missing, Missing, Missing})
			continue
		}
		for j, itin := range offer.Itineraries {
			rows := make([][]string, 0, len(itin.Segments))
			for _, seg := range itin.Segments {
				rows = append(rows, []string{"", "", "", flightCode(seg),
					value(seg.Departure.Airport) + "-" + value(seg.Arrival.Airport),
					value(seg.Departure.Time), value(seg.Arrival.Time), value(seg.Duration)})
			}
			if len(rows) == 0 {
				rows = append(rows, []string{"", "", "", Missing, Missing, Missing, Missing, value(itin.Duration)})
			}
			rows[0][2] = journey(j)
			if j == 0 {
				rows[0][0], rows[0][1] = rank, price
			}
			table.AppendBulk(rows)
		}
	}
	table.Render()
	return nil
}

// JSON writes the offers array. Absent fields appear as null.
type JSON struct {
	Indent string
}

// Render implements Renderer.
func (r JSON) Render(w io.Writer, offers []domain.ParsedOffer) error {
	if offers == nil {
		offers = []domain.ParsedOffer{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if r.Indent != "" {
		enc.SetIndent("", r.Indent)
	}
	return enc.Encode(offers)
}

// Summary is the line printed above a non-empty result.
func Summary(count int) string {
	return fmt.Sprintf("Found %d flights (sorted by price):", count)
}

// NoResultsMessage explains an empty but successful search.
func NoResultsMessage() string {
	var b strings.Builder
	b.WriteString("No flights found. This could mean:")
	for _, cause := range domain.NoOfferCauses {
		b.WriteString("\n- ")
		b.WriteString(cause)
	}
	return b.String()
}

// FailureReason turns a search error into a message for the person who ran the search.
func FailureReason(err error) string {
	if err == nil {
		return ""
	}

	var fieldErr *domain.ValidationError
	switch {
	case domain.IsConfiguration(err):
		return "The search provider is not configured: " + innermost(err)
	case errors.As(err, &fieldErr):
		return "Invalid input: " + fieldErr.Message
	case domain.IsInvalidRequest(err):
		return "Invalid input: " + err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return "The search timed out. Please try again."
	case errors.Is(err, context.Canceled):
		return "Search cancelled."
	case domain.IsAuth(err):
		return "The provider rejected our credentials. Check AMADEUS_API_KEY and AMADEUS_API_SECRET."
	case domain.IsMalformedPrice(err):
		return "The provider returned an offer with an unreadable price: " + innermost(err)
	case domain.IsTransport(err):
		var pe *domain.ProviderError
		if errors.As(err, &pe) && pe.StatusCode != 0 {
			return fmt.Sprintf("The flight search service failed (status %d). Please try again later.", pe.StatusCode)
		}
		return "Could not reach the flight search service. Check your connection and try again."
	}
	return err.Error()
}

// innermost strips wrapping prefixes so only the root message is shown.
func innermost(err error) string {
	var pe *domain.ProviderError
	if errors.As(err, &pe) && pe.Err != nil {
		return pe.Err.Error()
	}
	var me *domain.MalformedPriceError
	if errors.As(err, &me) {
		return fmt.Sprintf("offer %s has total %q", me.OfferID, me.Total)
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 && i+2 < len(msg) {
		return msg[i+2:]
	}
	return msg
}

func value(p *string) string {
	return domain.StringValue(p, Missing)
}

func flightCode(seg domain.Segment) string {
	if seg.Carrier == nil && seg.FlightNumber == nil {
		return Missing
	}
	return domain.StringValue(seg.Carrier, "") + domain.StringValue(seg.FlightNumber, "")
}

func journey(i int) string {
	if domain.IsReturn(i) {
		return "Return"
	}
	return "Outbound"
}

// printer remembers the first write error so Render can report it once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}
