package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"studio/app/domain"
)

// AuthUsecase defines the customer authentication business logic.
type AuthUsecase interface {
	// SignUp registers an identity and orchestrates avatar/profile
	// persistence. Provider errors are returned, never panicked.
	SignUp(ctx context.Context, locale string, input domain.SignUpInput) (*domain.SignUpOutcome, error)

	// SignIn authenticates and lazily creates or reconciles the profile row.
	SignIn(ctx context.Context, locale, email, password string) (*domain.Session, error)

	// SignOut revokes the session behind the token.
	SignOut(ctx context.Context, locale, token string) error

	// ValidateBearer resolves a bearer token to a live session.
	ValidateBearer(ctx context.Context, token string) (*domain.Session, error)
}

// AuthGateway wraps the hosted identity provider.
type AuthGateway interface {
	// SignUp registers the identity. Session is nil when the provider
	// requires email confirmation before issuing one.
	SignUp(ctx context.Context, email, password string, traits domain.IdentityTraits) (*domain.Session, *domain.Identity, error)

	// SignIn trades credentials for a session.
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)

	// SignOut revokes the session behind the token.
	SignOut(ctx context.Context, token string) error

	// GetSession resolves a session token.
	GetSession(ctx context.Context, token string) (*domain.Session, error)

	// SessionForIdentity returns the newest active session of an identity,
	// or domain.ErrSessionNotFound. Used to poll for the post-sign-up
	// session when the provider did not return one immediately. The
	// returned session carries no token (the admin listing never exposes
	// them); callers treat its existence as the confirmation signal.
	SessionForIdentity(ctx context.Context, identityID uuid.UUID) (*domain.Session, error)
}
