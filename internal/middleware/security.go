package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	// catalogPathPrefix serves the built-in sector catalog, which is the same for every caller
	catalogPathPrefix   = "/api/v1/industries"
	catalogCacheControl = "public, max-age=300"
)

// SecurityHeaders sets the response hardening headers. Classify and assess responses echo
// parts of payment notifications and are never cacheable; catalog reads may be cached
// briefly. HSTS is only sent when hsts is set, which serve does in production.
func SecurityHeaders(hsts bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
			h.Set("Referrer-Policy", "no-referrer")
			if hsts {
				h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			if isCatalogRead(c.Request()) {
				h.Set("Cache-Control", catalogCacheControl)
			} else {
				h.Set("Cache-Control", "no-store")
				h.Set("Pragma", "no-cache")
			}

			return next(c)
		}
	}
}

func isCatalogRead(r *http.Request) bool {
	return r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, catalogPathPrefix)
}
