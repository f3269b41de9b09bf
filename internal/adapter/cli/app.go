package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-search/flight-offer-aggregator/internal/adapter/presenter"
	"github.com/flight-search/flight-offer-aggregator/internal/domain"
	"github.com/flight-search/flight-offer-aggregator/internal/usecase"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const defaultProgressInterval = 500 * time.Millisecond

// App runs one search from the terminal.
type App struct {
	useCase  usecase.OfferSearchUseCase
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	timeout  time.Duration
	interval time.Duration
}

// AppOption configures an App.
type AppOption func(*App)

// WithIO replaces stdin, stdout and stderr.
func WithIO(in io.Reader, out, errOut io.Writer) AppOption {
	return func(a *App) {
		a.in, a.out, a.errOut = in, out, errOut
	}
}

// WithTimeout bounds the search, retries included.
func WithTimeout(d time.Duration) AppOption {
	return func(a *App) {
		a.timeout = d
	}
}

// WithProgressInterval sets how often a progress dot is printed while waiting.
func WithProgressInterval(d time.Duration) AppOption {
	return func(a *App) {
		a.interval = d
	}
}

// NewApp creates an App around the search pipeline.
func NewApp(uc usecase.OfferSearchUseCase, opts ...AppOption) *App {
	a := &App{
		useCase:  uc,
		in:       strings.NewReader(""),
		out:      io.Discard,
		errOut:   io.Discard,
		interval: defaultProgressInterval,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.interval <= 0 {
		a.interval = defaultProgressInterval
	}
	return a
}

// Run fills in missing options, searches and prints the result.
// It returns the process exit code.
func (a *App) Run(ctx context.Context, opts *Options) int {
	renderer, err := presenter.ForFormat(opts.Format)
	if err != nil {
		fmt.Fprintf(a.errOut, "Error: %v\n", err)
		return ExitUsage
	}
	machine := strings.EqualFold(opts.Format, string(presenter.FormatJSON))

	if opts.needsPrompt() {
		a.banner()
		if err := NewPrompter(a.in, a.out).Fill(opts); err != nil {
			fmt.Fprintf(a.errOut, "Error: %s\n", presenter.FailureReason(err))
			return ExitFailure
		}
	}

	req, err := domain.BuildSearchRequest(opts.SearchInput())
	if err != nil {
		fmt.Fprintf(a.errOut, "Error: %s\n", presenter.FailureReason(err))
		return ExitUsage
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	zerolog.Ctx(ctx).Debug().
		Str("origin", req.Origin).
		Str("destination", req.Destination).
		Str("departure_date", req.DepartureDateString()).
		Bool("round_trip", req.IsRoundTrip()).
		Msg("Starting search")

	offers, err := a.await(usecase.SearchAsync(ctx, a.useCase, req), req)
	if err != nil {
		fmt.Fprintf(a.errOut, "Error: %s\n", presenter.FailureReason(err))
		return ExitFailure
	}

	if machine {
		if err := renderer.Render(a.out, offers); err != nil {
			fmt.Fprintf(a.errOut, "Error: %v\n", err)
			return ExitFailure
		}
		return ExitOK
	}

	if len(offers) == 0 {
		fmt.Fprintln(a.out, presenter.NoResultsMessage())
		return ExitOK
	}

	fmt.Fprintf(a.out, "\n%s\n\n", presenter.Summary(len(offers)))
	fmt.Fprintln(a.out, strings.Repeat("=", 50))
	if err := renderer.Render(a.out, offers); err != nil {
		fmt.Fprintf(a.errOut, "Error: %v\n", err)
		return ExitFailure
	}
	return ExitOK
}

// await prints progress on stderr until the background search finishes.
func (a *App) await(p *usecase.Pending, req domain.SearchRequest) ([]domain.ParsedOffer, error) {
	fmt.Fprintf(a.errOut, "Searching for flights from %s to %s...", req.Origin, req.Destination)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.Done():
			fmt.Fprintln(a.errOut)
			return p.Wait()
		case <-ticker.C:
			fmt.Fprint(a.errOut, ".")
		}
	}
}

func (a *App) banner() {
	line := strings.Repeat("=", 50)
	fmt.Fprintln(a.out, line)
	fmt.Fprintln(a.out, "Flight Aggregator - Search & Compare Flights")
	fmt.Fprintln(a.out, line)
}
