package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Domain error codes. Handlers map these onto HTTP statuses via RespondError.
const (
	CodeNotFound   = "notFound"
	CodeForbidden  = "forbidden"
	CodeConflict   = "conflict"
	CodeValidation = "validationFailed"
)

// DomainError is a failure the caller can act on, as opposed to an
// unexpected internal error which is logged and returned as a generic 500.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewNotFoundError(msg string) error {
	return &DomainError{Code: CodeNotFound, Message: msg}
}

func NewForbiddenError(msg string) error {
	return &DomainError{Code: CodeForbidden, Message: msg}
}

func NewConflictError(msg string) error {
	return &DomainError{Code: CodeConflict, Message: msg}
}

func NewValidationError(msg string) error {
	return &DomainError{Code: CodeValidation, Message: msg}
}

// statusFor maps a domain error code to its HTTP status.
func statusFor(code string) int {
	switch code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeForbidden:
		return http.StatusForbidden
	case CodeConflict:
		return http.StatusConflict
	case CodeValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	logger := GetLogger()
	logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// RespondError writes a domain error with its mapped status, or a generic
// 500 for anything unexpected. Internal errors are logged with full detail
// but never leaked to the client.
func RespondError(c *gin.Context, err error) {
	var de *DomainError
	if errors.As(err, &de) {
		c.JSON(statusFor(de.Code), ErrorResponse{Message: de.Message})
		return
	}
	logger := GetLogger()
	logger.Error("Unexpected error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Message: "Internal Server Error",
		Details: "An unexpected error occurred. Please try again later.",
	})
}
