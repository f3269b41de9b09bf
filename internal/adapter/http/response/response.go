// Package response provides standardized HTTP response builders for the offer search API.
// It centralizes response formatting to ensure consistency across all endpoints.
package response

import (
	"github.com/labstack/echo/v4"
)

// ErrorDetail is the body of every non-2xx response.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`

	// RequestID correlates the failure with server logs
	RequestID string `json:"request_id,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest    = "invalid_request"
	CodeValidationError   = "validation_error"
	CodeProviderAuthError = "provider_auth_error"
	CodeProviderError     = "provider_error"
	CodeMalformedOffer    = "malformed_offer"
	CodeTimeout           = "timeout"
	CodeInternalError     = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgProviderAuth       = "The flight search provider rejected our credentials"
	MsgProviderError      = "The flight search provider could not be reached"
	MsgMalformedOffer     = "The flight search provider returned an offer with an invalid price"
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)

// requestIDKey mirrors the key the request ID middleware stores under.
const requestIDKey = "request_id"

func writeError(c echo.Context, status int, detail *ErrorDetail) error {
	if id, ok := c.Get(requestIDKey).(string); ok {
		detail.RequestID = id
	}
	return c.JSON(status, detail)
}
