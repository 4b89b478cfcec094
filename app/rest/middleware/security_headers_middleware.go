package middleware

import (
	"github.com/labstack/echo/v4"
)

// SecurityHeaders sets the baseline security headers on every response.
// The image proxy endpoint relaxes CORS on its own.
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			headers := c.Response().Header()

			headers.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
			headers.Set("X-Content-Type-Options", "nosniff")
			headers.Set("X-Frame-Options", "DENY")
			headers.Set("Referrer-Policy", "strict-origin-when-cross-origin")

			csp := "default-src 'self'; " +
				"img-src 'self' data: https:; " +
				"object-src 'none'; " +
				"base-uri 'self'; " +
				"form-action 'self'"
			headers.Set("Content-Security-Policy", csp)

			return next(c)
		}
	}
}
