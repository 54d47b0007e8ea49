package handlers

import "github.com/labstack/echo/v4"

// RegisterRoutes mounts the health check and the versioned API
func RegisterRoutes(e *echo.Echo, industry *IndustryHandler, health *HealthCheckHandler) {
	e.GET("/health", health.HealthCheck)

	api := e.Group("/api/v1")
	api.POST("/classify", industry.Classify)
	api.POST("/assess", industry.Assess)
	api.GET("/industries", industry.ListIndustries)
	api.GET("/industries/:sector", industry.GetIndustry)
}
