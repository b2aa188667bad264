package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc. for terminal errors.
//     These functions write the HTTP response; the handler should return after.
//   - Use logger.ErrorErr() only for non-critical errors where processing continues.
//
// For repositories:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err),
//     or one of the package-level sentinel errors for expected outcomes
//     (duplicate subscriber, duplicate referrer).
//   - Do not log errors in repository code (avoid double logging).
//
// Analytics side-channel calls never surface errors to the user at all; the
// recorder swallows them after logging at debug level.

// represents a standardized error response
type ErrorResponse struct {
	Error   string `json:"error"`           // error code (e.g., "unauthorized", "conflict")
	Message string `json:"message"`         // user-friendly message
	Debug   any    `json:"debug,omitempty"` // optional non-sensitive diagnostics
}

// standard error codes
const (
	CodeUnauthorized       = "unauthorized"
	CodeBadRequest         = "bad_request"
	CodeValidationError    = "validation_error"
	CodeConflict           = "conflict"
	CodeServerError        = "server_error"
	CodeBadGateway         = "bad_gateway"
	CodeServiceUnavailable = "service_unavailable"
	CodeTooManyRequests    = "too_many_requests"
)

// returns a 401 unauthorized error
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "authentication required"
	}

	c.JSON(http.StatusUnauthorized, ErrorResponse{
		Error:   CodeUnauthorized,
		Message: message,
	})
}

// returns a 401 unauthorized error with diagnostic detail
func UnauthorizedDebug(c *gin.Context, message string, debug any) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{
		Error:   CodeUnauthorized,
		Message: message,
		Debug:   debug,
	})
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "invalid request"
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeBadRequest,
		Message: message,
	})
}

// returns a 400 validation error
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeValidationError,
		Message: message,
	})
}

// returns a 409 conflict error
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, ErrorResponse{
		Error:   CodeConflict,
		Message: message,
	})
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "an internal error occurred"
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
	})
}

// returns a 502 bad gateway error for failed upstream calls
func BadGateway(c *gin.Context, message string) {
	c.JSON(http.StatusBadGateway, ErrorResponse{
		Error:   CodeBadGateway,
		Message: message,
	})
}

// returns a 503 service unavailable error for unconfigured features
func ServiceUnavailable(c *gin.Context, message string) {
	c.JSON(http.StatusServiceUnavailable, ErrorResponse{
		Error:   CodeServiceUnavailable,
		Message: message,
	})
}
