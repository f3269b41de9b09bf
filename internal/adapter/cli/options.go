// Package cli is the interactive terminal front end for offer search.
// Values come from flags first; whatever is missing is asked for on the input stream.
package cli

import (
	"github.com/spf13/pflag"

	"github.com/flight-search/flight-offer-aggregator/internal/adapter/presenter"
	"github.com/flight-search/flight-offer-aggregator/internal/domain"
)

// Flag names, shared by AddFlags and the prompt sequence.
const (
	flagOrigin      = "origin"
	flagDestination = "destination"
	flagDeparture   = "departure-date"
	flagReturn      = "return-date"
	flagAdults      = "adults"
	flagNonStop     = "non-stop"
	flagMaxResults  = "max-results"
	flagCurrency    = "currency"
)

// Options holds the search form as typed on the command line.
type Options struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        string
	NonStop       bool
	MaxResults    string
	Currency      string

	// Format selects the renderer: text, table or json
	Format string

	// NoPrompt disables interactive prompts; missing values keep their defaults
	NoPrompt bool

	// set records which fields were given as flags
	set map[string]bool
}

// NewOptions returns Options with the output format defaulted to text.
func NewOptions() *Options {
	return &Options{Format: string(presenter.FormatText)}
}

// AddFlags registers the search flags on fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Origin, flagOrigin, "o", o.Origin, "origin airport code (e.g. JFK)")
	fs.StringVarP(&o.Destination, flagDestination, "d", o.Destination, "destination airport code (e.g. LAX)")
	fs.StringVar(&o.DepartureDate, flagDeparture, o.DepartureDate, "departure date, YYYY-MM-DD")
	fs.StringVar(&o.ReturnDate, flagReturn, o.ReturnDate, "return date, YYYY-MM-DD; omit for one-way")
	fs.StringVar(&o.Adults, flagAdults, o.Adults, "number of adult passengers (default 1)")
	fs.BoolVar(&o.NonStop, flagNonStop, o.NonStop, "non-stop flights only")
	fs.StringVar(&o.MaxResults, flagMaxResults, o.MaxResults, "maximum number of results (default 10)")
	fs.StringVar(&o.Currency, flagCurrency, o.Currency, "currency code (default USD)")
	fs.StringVarP(&o.Format, "format", "f", o.Format, "output format: text, table or json")
	fs.BoolVar(&o.NoPrompt, "no-prompt", o.NoPrompt, "never prompt for missing values")
}

// MarkSet records the flags the user actually passed. Call it after fs.Parse.
func (o *Options) MarkSet(fs *pflag.FlagSet) {
	o.set = make(map[string]bool)
	fs.Visit(func(f *pflag.Flag) {
		o.set[f.Name] = true
	})
}

func (o *Options) isSet(name string) bool {
	return o.set[name]
}

// needsPrompt reports whether a required field is still missing.
func (o *Options) needsPrompt() bool {
	return !o.NoPrompt && (o.Origin == "" || o.Destination == "" || o.DepartureDate == "")
}

// SearchInput converts the options into builder input. A return date makes the trip a round trip.
func (o *Options) SearchInput() domain.SearchInput {
	return domain.SearchInput{
		Origin:        o.Origin,
		Destination:   o.Destination,
		DepartureDate: o.DepartureDate,
		ReturnDate:    o.ReturnDate,
		RoundTrip:     o.ReturnDate != "",
		Adults:        o.Adults,
		MaxResults:    o.MaxResults,
		Currency:      o.Currency,
		NonStop:       o.NonStop,
	}
}
