// Command flightsearch searches flight offers from the terminal.
//
// Values not passed as flags are prompted for:
//
//	flightsearch --origin JFK --destination LAX --departure-date 2025-12-15 --format table
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/flight-search/flight-offer-aggregator/internal/adapter/cli"
	"github.com/flight-search/flight-offer-aggregator/internal/adapter/presenter"
	"github.com/flight-search/flight-offer-aggregator/internal/adapter/provider/amadeus"
	"github.com/flight-search/flight-offer-aggregator/internal/config"
	"github.com/flight-search/flight-offer-aggregator/internal/infrastructure/logger"
	"github.com/flight-search/flight-offer-aggregator/internal/infrastructure/ratelimit"
	"github.com/flight-search/flight-offer-aggregator/internal/usecase"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := cli.NewOptions()
	fs := pflag.NewFlagSet("flightsearch", pflag.ContinueOnError)
	opts.AddFlags(fs)
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return cli.ExitOK
		}
		return cli.ExitUsage
	}
	opts.MarkSet(fs)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", presenter.FailureReason(err))
		return cli.ExitFailure
	}

	// Logs go to stderr so they never mix with rendered offers.
	logCfg := cfg.Logging
	if logCfg.Format != "json" {
		logCfg.Format = "console"
	}
	log := logger.NewWithOutput(logCfg, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.Attach(ctx)

	provider, err := amadeus.NewAdapter(
		amadeus.Config{
			APIKey:         cfg.Amadeus.APIKey,
			APISecret:      cfg.Amadeus.APISecret,
			BaseURL:        cfg.Amadeus.BaseURL,
			MaxAttempts:    cfg.Amadeus.MaxAttempts,
			RequestTimeout: cfg.Amadeus.RequestTimeout,
			RetryDelay:     cfg.Amadeus.RetryDelay,
			RetryMaxDelay:  cfg.Amadeus.RetryMaxDelay,
		},
		amadeus.WithLimiter(ratelimit.NewProviderLimiter(cfg.Amadeus.RateLimit)),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", presenter.FailureReason(err))
		return cli.ExitFailure
	}
	defer provider.Close()

	app := cli.NewApp(
		usecase.NewOfferSearchUseCase(provider),
		cli.WithIO(os.Stdin, os.Stdout, os.Stderr),
		cli.WithTimeout(cfg.Search.Timeout),
	)
	return app.Run(ctx, opts)
}
