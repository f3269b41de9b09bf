// Package main is the entry point for the flight offer search service.
//
//	@title						Flight Offer Aggregator API
//	@version					1.0.0
//	@description				Searches a flight offer provider, normalizes the nested offers and returns them ranked by total price.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-search/flight-offer-aggregator/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	// Import generated docs for swagger
	_ "github.com/flight-search/flight-offer-aggregator/docs"

	// Application layers
	offerhttp "github.com/flight-search/flight-offer-aggregator/internal/adapter/http"
	"github.com/flight-search/flight-offer-aggregator/internal/adapter/http/middleware"
	"github.com/flight-search/flight-offer-aggregator/internal/adapter/provider/amadeus"
	"github.com/flight-search/flight-offer-aggregator/internal/config"
	"github.com/flight-search/flight-offer-aggregator/internal/infrastructure/logger"
	"github.com/flight-search/flight-offer-aggregator/internal/infrastructure/metrics"
	"github.com/flight-search/flight-offer-aggregator/internal/infrastructure/ratelimit"
	"github.com/flight-search/flight-offer-aggregator/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	openTimeout     = 15 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	log := logger.New(cfg.Logging)
	ctx := log.Attach(context.Background())

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("provider_url", cfg.Amadeus.BaseURL).
		Msg("Configuration loaded")

	m := metrics.New()

	provider, err := newProvider(ctx, cfg, m)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open provider session")
	}
	defer provider.Close()

	offerUseCase := usecase.NewOfferSearchUseCase(provider, usecase.WithObserver(m))

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.IsDevelopment()

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	handler := offerhttp.NewOfferHandler(offerUseCase, offerhttp.WithSearchTimeout(cfg.Search.Timeout))
	offerhttp.RegisterRoutes(e, handler, m.Handler(), offerhttp.WithSwagger(!cfg.IsProduction()))

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a failed listener
	if err := gracefulShutdown(e, log, serverErr); err != nil {
		provider.Close()
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

// newProvider builds the Amadeus adapter and fetches its first token,
// so bad credentials stop the process before it accepts traffic.
func newProvider(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (*amadeus.Adapter, error) {
	adapter, err := amadeus.NewAdapter(
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
		amadeus.WithCallObserver(m),
	)
	if err != nil {
		return nil, err
	}

	openCtx, cancel := context.WithTimeout(ctx, openTimeout)
	defer cancel()
	if err := adapter.Open(openCtx); err != nil {
		adapter.Close()
		return nil, err
	}
	return adapter, nil
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
// It returns the listener error instead when the server fails to start.
func gracefulShutdown(e *echo.Echo, log *logger.Logger, serverErr <-chan error) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
	}
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
	return nil
}
