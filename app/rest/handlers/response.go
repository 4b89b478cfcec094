package handlers

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error body returned by every endpoint.
type ErrorResponse struct {
	Error  string           `json:"error"`
	Fields []FieldErrorView `json:"fields,omitempty"`
}

// FieldErrorView is one field-path validation failure.
type FieldErrorView struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// MessageResponse is the JSON success body for operations without payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// localeFrom picks the notification locale from the Accept-Language header,
// keeping only the primary subtag.
func localeFrom(c echo.Context, fallback string) string {
	header := c.Request().Header.Get("Accept-Language")
	if header == "" {
		return fallback
	}
	lang := strings.TrimSpace(strings.Split(header, ",")[0])
	if idx := strings.Index(lang, "-"); idx > 0 {
		lang = lang[:idx]
	}
	if lang == "" {
		return fallback
	}
	return lang
}
