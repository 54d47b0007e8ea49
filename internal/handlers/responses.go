package handlers

import (
	"log/slog"
	"net/http"

	"msme-carbon/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError for client errors (4xx) and
// SendSystemError for anything the caller cannot fix. Neither echo.NewHTTPError
// nor a bare c.JSON is used for errors, so every failure carries a trace ID.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError logs err and answers with the generic SYSTEM_001 envelope
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	slog.Default().ErrorContext(c.Request().Context(), "request failed",
		"trace_id", traceID,
		"path", c.Path(),
		"error", err,
	)
	errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendData sends a 200 response wrapping data in a SuccessResponse
func SendData(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: data})
}
