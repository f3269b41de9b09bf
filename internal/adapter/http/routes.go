package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouteOption configures RegisterRoutes.
type RouteOption func(*routeConfig)

type routeConfig struct {
	swagger bool
}

// WithSwagger toggles the /swagger UI. It is served unless disabled.
func WithSwagger(enabled bool) RouteOption {
	return func(c *routeConfig) {
		c.swagger = enabled
	}
}

// RegisterRoutes registers the API routes. A nil metrics handler leaves /metrics unregistered.
func RegisterRoutes(e *echo.Echo, h *OfferHandler, metrics http.Handler, opts ...RouteOption) {
	cfg := routeConfig{swagger: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	e.GET("/health", h.Health)
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}
	if cfg.swagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := e.Group("/api/v1")
	offers := api.Group("/offers")
	offers.POST("/search", h.SearchOffers)
}
