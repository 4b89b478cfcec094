package domain

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// AdminSessionCookie is the cookie name consumed by the session gate.
const AdminSessionCookie = "admin_session"

// AdminLoginPath and AdminDashboardPath are the two route classes the
// session gate arbitrates between.
const (
	AdminLoginPath     = "/auth"
	AdminDashboardPath = "/admin/dashboard"
)

// AdminSession is the decoded admin_session cookie payload. IssuedAt is
// unix milliseconds, matching what the dashboard login page writes.
type AdminSession struct {
	Username string `json:"username"`
	IssuedAt int64  `json:"issuedAt"`
}

// DecodeAdminSession parses a raw cookie value: base64 of a JSON blob. Any
// decode failure or missing field renders the session invalid.
func DecodeAdminSession(raw string) (*AdminSession, error) {
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("decode admin session: %w", err)
	}

	var session AdminSession
	if err := json.Unmarshal(decoded, &session); err != nil {
		return nil, fmt.Errorf("parse admin session: %w", err)
	}

	if session.Username == "" || session.IssuedAt == 0 {
		return nil, fmt.Errorf("admin session missing fields")
	}

	return &session, nil
}

// Encode serializes the session back to cookie form.
func (s *AdminSession) Encode() string {
	payload, _ := json.Marshal(s)
	return base64.StdEncoding.EncodeToString(payload)
}

// IsExpired reports whether the session is older than ttl at the given
// instant. Staleness is treated as anonymous, never cached positively.
func (s *AdminSession) IsExpired(now time.Time, ttl time.Duration) bool {
	issued := time.UnixMilli(s.IssuedAt)
	return now.Sub(issued) >= ttl
}

// GateAction is the routing outcome of the session gate.
type GateAction int

const (
	GatePass GateAction = iota
	GateRedirectLogin
	GateRedirectDashboard
)

// AdminGateAction decides routing purely from the path and whether the
// request carries a valid admin session. Visiting the login page while
// authenticated bounces to the dashboard; dashboard-prefixed paths without
// a valid session bounce to login; everything else passes.
func AdminGateAction(path string, validAdmin bool) GateAction {
	if path == AdminLoginPath && validAdmin {
		return GateRedirectDashboard
	}
	if strings.HasPrefix(path, AdminDashboardPath) && !validAdmin {
		return GateRedirectLogin
	}
	return GatePass
}
