package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"studio/app/domain"
	"studio/app/port"
)

const sessionContextKey = "session"

// AuthMiddleware validates bearer tokens against the identity provider.
type AuthMiddleware struct {
	authUsecase port.AuthUsecase
	logger      *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware.
func NewAuthMiddleware(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		logger:      logger,
	}
}

// RequireAuth rejects requests without a live bearer session and stashes
// the session in the request context for handlers.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			token := extractBearerToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			session, err := m.authUsecase.ValidateBearer(ctx, token)
			if err != nil {
				m.logger.Info("bearer validation failed", "error", err)
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			c.Set(sessionContextKey, session)
			return next(c)
		}
	}
}

// OptionalAuth stashes the bearer session when one validates but never
// rejects. Handlers behind it decide their own unauthorized responses.
func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractBearerToken(c)
			if token == "" {
				return next(c)
			}

			session, err := m.authUsecase.ValidateBearer(c.Request().Context(), token)
			if err != nil {
				m.logger.Info("bearer validation failed", "error", err)
				return next(c)
			}

			c.Set(sessionContextKey, session)
			return next(c)
		}
	}
}

// SessionFrom returns the session stashed by the auth middleware, or nil.
func SessionFrom(c echo.Context) *domain.Session {
	session, ok := c.Get(sessionContextKey).(*domain.Session)
	if !ok {
		return nil
	}
	return session
}

func extractBearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
