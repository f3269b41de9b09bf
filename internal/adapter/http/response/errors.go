package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return writeError(c, http.StatusBadRequest, &ErrorDetail{
		Code:    CodeInvalidRequest,
		Message: MsgInvalidRequestBody,
	})
}

// ValidationError writes a 400 Bad Request response with validation error details.
func ValidationError(c echo.Context, details map[string]string) error {
	return writeError(c, http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: MsgValidationFailed,
		Details: details,
	})
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return writeError(c, http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: message,
	})
}

// ProviderAuthFailed writes a 502 Bad Gateway response for rejected provider credentials.
func ProviderAuthFailed(c echo.Context) error {
	return writeError(c, http.StatusBadGateway, &ErrorDetail{
		Code:    CodeProviderAuthError,
		Message: MsgProviderAuth,
	})
}

// ProviderFailed writes a 502 Bad Gateway response for a failed provider call.
func ProviderFailed(c echo.Context) error {
	return writeError(c, http.StatusBadGateway, &ErrorDetail{
		Code:    CodeProviderError,
		Message: MsgProviderError,
	})
}

// MalformedOffer writes a 502 Bad Gateway response for an offer whose price cannot be read.
func MalformedOffer(c echo.Context) error {
	return writeError(c, http.StatusBadGateway, &ErrorDetail{
		Code:    CodeMalformedOffer,
		Message: MsgMalformedOffer,
	})
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return writeError(c, http.StatusGatewayTimeout, &ErrorDetail{
		Code:    CodeTimeout,
		Message: MsgTimeout,
	})
}

// RequestCancelled writes a 504 Gateway Timeout response for cancelled requests.
func RequestCancelled(c echo.Context) error {
	return writeError(c, http.StatusGatewayTimeout, &ErrorDetail{
		Code:    CodeTimeout,
		Message: MsgRequestCancelled,
	})
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return writeError(c, http.StatusInternalServerError, &ErrorDetail{
		Code:    CodeInternalError,
		Message: MsgInternalError,
	})
}
