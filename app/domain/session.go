package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// IdentityTraits mirrors the metadata stored with the hosted identity.
type IdentityTraits struct {
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	AvatarURL string `json:"avatar_url"`
}

// Identity represents a customer identity owned by the hosted auth provider.
type Identity struct {
	ID     uuid.UUID      `json:"id"`
	Email  string         `json:"email"`
	Traits IdentityTraits `json:"traits"`
}

// Username derives the display-name snapshot stored with a review: the trait
// full name, else the email local-part, else "User".
func (i Identity) Username() string {
	if i.Traits.FullName != "" {
		return i.Traits.FullName
	}
	if at := strings.Index(i.Email, "@"); at > 0 {
		return i.Email[:at]
	}
	return "User"
}

// Session is the locally mirrored view of a provider-issued session.
type Session struct {
	Token     string    `json:"token"`
	Identity  Identity  `json:"identity"`
	Active    bool      `json:"active"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the session has passed its expiry.
func (s *Session) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// AuthState is the tri-state lifecycle of the cached session mirror.
type AuthState int

const (
	AuthStateLoading AuthState = iota
	AuthStateAuthenticated
	AuthStateAnonymous
)

func (s AuthState) String() string {
	switch s {
	case AuthStateLoading:
		return "loading"
	case AuthStateAuthenticated:
		return "authenticated"
	case AuthStateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// CanTransition reports whether moving from s to next is a legal lifecycle
// step. Loading resolves to either terminal state; the terminal states flip
// on sign-in/sign-out or external expiry. Nothing returns to Loading.
func (s AuthState) CanTransition(next AuthState) bool {
	switch s {
	case AuthStateLoading:
		return next == AuthStateAuthenticated || next == AuthStateAnonymous
	case AuthStateAuthenticated:
		return next == AuthStateAnonymous
	case AuthStateAnonymous:
		return next == AuthStateAuthenticated
	default:
		return false
	}
}
