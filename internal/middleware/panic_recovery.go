package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"msme-carbon/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PanicRecovery turns a panicking handler into a SYSTEM_001 response and counts it in
// api_panics_total by route. A nil reg leaves the counter unregistered; a nil logger
// uses slog.Default.
func PanicRecovery(reg prometheus.Registerer, logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}
	panicsTotal := promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_panics_total",
			Help: "Total number of recovered handler panics by endpoint",
		},
		[]string{"endpoint"},
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}
				req := c.Request()
				logger.ErrorContext(req.Context(), "handler panicked",
					"trace_id", traceID,
					"panic", fmt.Sprint(r),
					"method", req.Method,
					"path", req.URL.Path,
					"stack_trace", string(debug.Stack()),
				)
				panicsTotal.WithLabelValues(c.Path()).Inc()

				err = c.JSON(http.StatusInternalServerError, errors.NewErrorResponse(errors.SystemInternalError, traceID))
			}()

			return next(c)
		}
	}
}
