package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"studio/app/domain"
	"studio/app/port"
)

// SessionGateMiddleware guards the admin area behind the admin_session
// cookie. It decides purely from the cookie and the request path: a valid
// admin on the login page is bounced to the dashboard, an invalid one on a
// dashboard page is bounced to the login page, everything else passes.
type SessionGateMiddleware struct {
	adminRepo port.AdminRepository
	ttl       time.Duration
	logger    *slog.Logger
}

// NewSessionGateMiddleware creates a new session gate.
func NewSessionGateMiddleware(adminRepo port.AdminRepository, ttl time.Duration, logger *slog.Logger) *SessionGateMiddleware {
	return &SessionGateMiddleware{
		adminRepo: adminRepo,
		ttl:       ttl,
		logger:    logger,
	}
}

// Gate returns the middleware function.
func (m *SessionGateMiddleware) Gate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			validAdmin := m.checkAdmin(c)

			switch domain.AdminGateAction(c.Request().URL.Path, validAdmin) {
			case domain.GateRedirectLogin:
				return c.Redirect(http.StatusSeeOther, domain.AdminLoginPath)
			case domain.GateRedirectDashboard:
				return c.Redirect(http.StatusSeeOther, domain.AdminDashboardPath)
			default:
				return next(c)
			}
		}
	}
}

// checkAdmin resolves the cookie to a yes/no admin decision. A cookie that
// fails to decode or has expired is cleared; a cookie naming an unknown
// admin is left in place, only the request is denied.
func (m *SessionGateMiddleware) checkAdmin(c echo.Context) bool {
	cookie, err := c.Cookie(domain.AdminSessionCookie)
	if err != nil || cookie.Value == "" {
		return false
	}

	session, err := domain.DecodeAdminSession(cookie.Value)
	if err != nil {
		m.logger.Info("admin session cookie unreadable", "error", err)
		m.deleteCookie(c)
		return false
	}

	if session.IsExpired(time.Now(), m.ttl) {
		m.logger.Info("admin session expired", "username", session.Username)
		m.deleteCookie(c)
		return false
	}

	exists, err := m.adminRepo.Exists(c.Request().Context(), session.Username)
	if err != nil {
		m.logger.Error("admin lookup failed", "username", session.Username, "error", err)
		return false
	}
	if !exists {
		m.logger.Info("admin session names unknown admin", "username", session.Username)
		return false
	}

	return true
}

func (m *SessionGateMiddleware) deleteCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     domain.AdminSessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
