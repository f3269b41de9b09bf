package http

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-search/flight-offer-aggregator/internal/adapter/http/middleware"
	"github.com/flight-search/flight-offer-aggregator/internal/adapter/http/response"
	"github.com/flight-search/flight-offer-aggregator/internal/domain"
	"github.com/flight-search/flight-offer-aggregator/internal/infrastructure/timeutil"
	"github.com/flight-search/flight-offer-aggregator/internal/usecase"
)

// OfferHandler handles HTTP requests for offer search endpoints.
type OfferHandler struct {
	useCase usecase.OfferSearchUseCase
	clock   timeutil.Clock
	timeout time.Duration
}

// HandlerOption configures an OfferHandler.
type HandlerOption func(*OfferHandler)

// WithClock sets the clock used for the departure date check and timings.
func WithClock(c timeutil.Clock) HandlerOption {
	return func(h *OfferHandler) {
		h.clock = c
	}
}

// WithSearchTimeout bounds each search, retries and rate limit waits included.
func WithSearchTimeout(d time.Duration) HandlerOption {
	return func(h *OfferHandler) {
		h.timeout = d
	}
}

// NewOfferHandler creates a new OfferHandler with the given use case.
func NewOfferHandler(uc usecase.OfferSearchUseCase, opts ...HandlerOption) *OfferHandler {
	h := &OfferHandler{
		useCase: uc,
		clock:   timeutil.NewRealClock(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SearchOffers handles POST /api/v1/offers/search
//
// @Summary Search flight offers
// @Description Search one provider for flight offers and return them sorted by total price, cheapest first
// @Tags offers
// @Accept json
// @Produce json
// @Param request body SearchOffersRequest true "Search criteria"
// @Success 200 {object} SwaggerSearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Provider authentication, transport or offer price failure"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/offers/search [post]
func (h *OfferHandler) SearchOffers(c echo.Context) error {
	var req SearchOffersRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(h.clock.Now()); err != nil {
		return h.handleValidationError(c, err)
	}

	searchReq, err := domain.BuildSearchRequest(ToSearchInput(&req))
	if err != nil {
		return h.handleValidationError(c, err)
	}

	ctx := c.Request().Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	start := h.clock.Now()
	offers, err := h.useCase.Search(ctx, searchReq)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToSearchResponse(
		searchReq,
		offers,
		h.useCase.Provider(),
		middleware.GetRequestID(c),
		timeutil.Since(h.clock, start),
	))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *OfferHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	var fieldErr *domain.ValidationError
	if errors.As(err, &fieldErr) {
		return response.ValidationError(c, map[string]string{fieldErr.Field: fieldErr.Message})
	}

	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to HTTP responses.
func (h *OfferHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	case domain.IsInvalidRequest(err):
		return h.handleValidationError(c, err)
	case domain.IsAuth(err):
		return response.ProviderAuthFailed(c)
	case domain.IsMalformedPrice(err):
		return response.MalformedOffer(c)
	case domain.IsTransport(err):
		return response.ProviderFailed(c)
	}

	zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("Unmapped search error")
	return response.InternalServerError(c)
}

// Health handles GET /health
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *OfferHandler) Health(c echo.Context) error {
	return response.Health(c, h.useCase.Provider())
}
