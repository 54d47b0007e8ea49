package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"msme-carbon/internal/errors"
	"msme-carbon/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ErrorHandler renders every error that escapes a handler as a coded JSON envelope
type ErrorHandler struct {
	logger      *slog.Logger
	errorsTotal *prometheus.CounterVec
}

// NewErrorHandler registers api_errors_total with reg. A nil reg leaves the counter
// unregistered; a nil logger uses slog.Default.
func NewErrorHandler(reg prometheus.Registerer, logger *slog.Logger) *ErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorHandler{
		logger: logger,
		errorsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API errors by code, endpoint, and status",
			},
			[]string{"code", "endpoint", "status"},
		),
	}
}

// Handle implements echo.HTTPErrorHandler
func (h *ErrorHandler) Handle(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	response, status := resolve(err, traceID)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	req := c.Request()
	h.logger.Log(req.Context(), level, "request failed",
		"trace_id", traceID,
		"error_code", response.Error.Code,
		"status", status,
		"method", req.Method,
		"path", req.URL.Path,
		"error", err,
	)

	h.errorsTotal.WithLabelValues(response.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

	if sendErr := c.JSON(status, response); sendErr != nil {
		h.logger.Error("failed to send error response", "trace_id", traceID, "error", sendErr)
	}
}

// resolve picks the envelope and status for err. Uncoded errors never leak their text.
func resolve(err error, traceID string) (*errors.ErrorResponse, int) {
	var httpErr *echo.HTTPError
	var validationErrs validator.ValidationErrors
	var coded *errors.Error

	switch {
	case stderrors.As(err, &coded):
		response := errors.NewErrorResponse(coded.Code, traceID, errors.WithDetails(coded.Err.Error()))
		return response, response.GetHTTPStatus()
	case stderrors.As(err, &validationErrs):
		return errors.NewValidationErrorFromList(validation.Details(validationErrs), traceID), http.StatusBadRequest
	case stderrors.As(err, &httpErr):
		response := errors.NewErrorResponse(
			codeForStatus(httpErr.Code),
			traceID,
			errors.WithMessage(fmt.Sprint(httpErr.Message)),
		)
		return response, httpErr.Code
	default:
		return errors.NewErrorResponse(errors.SystemInternalError, traceID), http.StatusInternalServerError
	}
}

func codeForStatus(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusUnsupportedMediaType:
		return errors.ValidationGeneral
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return errors.SystemRouteNotFound
	case http.StatusRequestEntityTooLarge:
		return errors.SystemPayloadTooLarge
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}
