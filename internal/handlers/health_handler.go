package handlers

import (
	"net/http"
	"time"

	"msme-carbon/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db      *gorm.DB
	sectors int
}

// NewHealthCheckHandler creates a new health check handler.
// db is nil when the service runs without sender indicator storage.
func NewHealthCheckHandler(db *gorm.DB, sectors int) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, sectors: sectors}
}

// HealthCheck reports the loaded catalog size and, when configured, database connectivity
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	database := "disabled"
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request().Context())
		}
		if err != nil {
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
		}
		database = "connected"
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "healthy",
		"sectors":  h.sectors,
		"database": database,
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}
