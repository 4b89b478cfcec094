package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"studio/app/domain"
	"studio/app/port"
	"studio/app/utils/fallback"
)

// sessionPollDelays spaces out the post-registration session polls. The
// provider sometimes needs a moment before the first session shows up.
var sessionPollDelays = []time.Duration{
	1 * time.Second,
	2 * time.Second,
	3 * time.Second,
}

// AuthUsecase orchestrates registration, sign-in and session validation on
// top of the hosted identity provider. Profile and avatar writes go through
// a direct path first and fall back to the public REST endpoints.
type AuthUsecase struct {
	authGateway port.AuthGateway
	profileRepo port.ProfileRepository
	profileAPI  port.ProfileAPIClient
	storage     port.StorageGateway
	notifier    port.Notifier
	logger      *slog.Logger

	sleep func(ctx context.Context, d time.Duration) error
}

// NewAuthUsecase creates a new auth usecase.
func NewAuthUsecase(
	authGateway port.AuthGateway,
	profileRepo port.ProfileRepository,
	profileAPI port.ProfileAPIClient,
	storage port.StorageGateway,
	notifier port.Notifier,
	logger *slog.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		authGateway: authGateway,
		profileRepo: profileRepo,
		profileAPI:  profileAPI,
		storage:     storage,
		notifier:    notifier,
		logger:      logger.With("component", "auth_usecase"),
		sleep:       sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// SignUp registers the identity and persists the profile row and avatar.
// The session obtained during registration is transient: it authorizes the
// persistence writes and is revoked before returning, so the customer still
// signs in explicitly afterwards.
func (u *AuthUsecase) SignUp(ctx context.Context, locale string, input domain.SignUpInput) (*domain.SignUpOutcome, error) {
	traits := domain.IdentityTraits{
		FullName: input.FullName,
		Phone:    input.Phone,
	}

	session, identity, err := u.authGateway.SignUp(ctx, input.Email, input.Password, traits)
	if err != nil {
		u.logger.Error("registration failed", "email", input.Email, "error", err)
		u.notifier.Error(locale, "SIGNUP_ERROR")
		return nil, err
	}

	if session == nil {
		session = u.pollForSession(ctx, identity)
	}

	if session == nil {
		u.logger.Info("registration pending email confirmation", "identity_id", identity.ID)
		u.notifier.Success(locale, "SIGNUP_SUCCESS_CHECK_EMAIL")
		return &domain.SignUpOutcome{
			Status:   domain.SignUpPendingConfirmation,
			Identity: identity,
		}, nil
	}

	outcome := &domain.SignUpOutcome{
		Status:   domain.SignUpSuccess,
		Identity: identity,
	}

	var avatarURL *string
	if input.Avatar != nil {
		if url, err := u.uploadAvatar(ctx, session, input.Avatar); err != nil {
			// Avatar loss never fails the whole registration.
			u.logger.Warn("avatar upload failed on every path", "identity_id", identity.ID, "error", err)
		} else {
			avatarURL = &url
		}
	}
	outcome.AvatarURL = avatarURL

	if err := u.saveProfile(ctx, session, identity, input, avatarURL); err != nil {
		u.logger.Error("profile persistence failed on every path", "identity_id", identity.ID, "error", err)
		outcome.Status = domain.SignUpPartialFailure
		u.signOutTransient(ctx, session)
		u.notifier.Error(locale, "SIGNUP_PROFILE_FAILED")
		return outcome, nil
	}
	outcome.ProfileSaved = true

	if _, err := u.profileRepo.GetByAuthID(ctx, identity.ID); err != nil {
		u.logger.Warn("profile row not readable after save", "identity_id", identity.ID, "error", err)
		u.notifier.Error(locale, "PROFILE_VERIFY_WARNING")
	}

	u.signOutTransient(ctx, session)
	u.notifier.Success(locale, "SIGNUP_SUCCESS")
	return outcome, nil
}

// pollForSession retries the provider a few times for the session that
// sometimes lags behind registration. Returns nil when none appears. The
// polled session carries no token, so the persistence writes that follow
// run on their direct paths only.
func (u *AuthUsecase) pollForSession(ctx context.Context, identity *domain.Identity) *domain.Session {
	for attempt, delay := range sessionPollDelays {
		if err := u.sleep(ctx, delay); err != nil {
			return nil
		}

		session, err := u.authGateway.SessionForIdentity(ctx, identity.ID)
		if err == nil && session != nil {
			return session
		}
		u.logger.Debug("session not yet available",
			"identity_id", identity.ID,
			"attempt", attempt+1)
	}
	return nil
}

// uploadAvatar tries the object store directly, then replays the upload
// through the public endpoint. Returns the public URL of whichever path
// succeeded. The REST replay needs a bearer token, so a token-less polled
// session gets the direct path only.
func (u *AuthUsecase) uploadAvatar(ctx context.Context, session *domain.Session, avatar *domain.AvatarUpload) (string, error) {
	key := avatarKey(session.Identity.ID.String(), avatar)

	strategies := []fallback.Strategy[string]{
		{
			Name: "storage_direct",
			Run: func(ctx context.Context) (string, error) {
				return u.storage.Upload(ctx, key, avatar.ContentType, avatar.Data)
			},
		},
	}
	if session.Token != "" {
		strategies = append(strategies, fallback.Strategy[string]{
			Name: "rest_api",
			Run: func(ctx context.Context) (string, error) {
				return u.profileAPI.UploadAvatar(ctx, session.Token, avatar)
			},
		})
	}

	return fallback.First(ctx, u.logger, "avatar_upload", strategies...)
}

func avatarKey(identityID string, avatar *domain.AvatarUpload) string {
	ext := strings.ToLower(filepath.Ext(avatar.Filename))
	if ext == "" {
		switch avatar.ContentType {
		case "image/png":
			ext = ".png"
		case "image/webp":
			ext = ".webp"
		default:
			ext = ".jpg"
		}
	}
	return fmt.Sprintf("%s-%d%s", identityID, time.Now().UnixMilli(), ext)
}

// saveProfile writes the profile row directly, then through the public
// endpoint when the database is unreachable.
func (u *AuthUsecase) saveProfile(ctx context.Context, session *domain.Session, identity *domain.Identity, input domain.SignUpInput, avatarURL *string) error {
	profile, err := domain.NewProfile(identity.ID, input.FullName, input.Email)
	if err != nil {
		return err
	}
	if input.Phone != "" {
		phone := input.Phone
		profile.Phone = &phone
	}
	profile.AvatarURL = avatarURL

	strategies := []fallback.Strategy[struct{}]{
		{
			Name: "database_direct",
			Run: func(ctx context.Context) (struct{}, error) {
				return struct{}{}, u.profileRepo.Upsert(ctx, profile)
			},
		},
	}
	if session.Token != "" {
		strategies = append(strategies, fallback.Strategy[struct{}]{
			Name: "rest_api",
			Run: func(ctx context.Context) (struct{}, error) {
				return struct{}{}, u.profileAPI.SaveProfile(ctx, session.Token, profile)
			},
		})
	}

	_, err = fallback.First(ctx, u.logger, "profile_save", strategies...)
	return err
}

func (u *AuthUsecase) signOutTransient(ctx context.Context, session *domain.Session) {
	// A polled session was never handed a token, so there is nothing to
	// revoke on this side.
	if session.Token == "" {
		return
	}
	if err := u.authGateway.SignOut(ctx, session.Token); err != nil {
		u.logger.Warn("failed to revoke transient registration session", "error", err)
	}
}

// SignIn authenticates and makes sure a profile row exists for the
// identity, creating it lazily from provider metadata on first sign-in.
func (u *AuthUsecase) SignIn(ctx context.Context, locale, email, password string) (*domain.Session, error) {
	session, err := u.authGateway.SignIn(ctx, email, password)
	if err != nil {
		u.logger.Info("sign-in rejected", "email", email, "error", err)
		u.notifier.Error(locale, "SIGNIN_ERROR")
		return nil, err
	}

	u.ensureProfile(ctx, session)

	u.notifier.Success(locale, "SIGNIN_SUCCESS")
	return session, nil
}

// ensureProfile creates or reconciles the profile row after sign-in.
// Failures are logged and swallowed: a missing profile row never blocks
// authentication.
func (u *AuthUsecase) ensureProfile(ctx context.Context, session *domain.Session) {
	identity := session.Identity

	existing, err := u.profileRepo.GetByAuthID(ctx, identity.ID)
	switch {
	case err == nil:
		if existing.Reconcile(identity.Traits) {
			if updateErr := u.profileRepo.Update(ctx, existing); updateErr != nil {
				u.logger.Warn("profile reconcile update failed", "identity_id", identity.ID, "error", updateErr)
			}
		}
		return

	case errors.Is(err, domain.ErrProfileNotFound):
		profile, buildErr := domain.ProfileFromIdentity(identity)
		if buildErr != nil {
			u.logger.Warn("cannot derive profile from identity", "identity_id", identity.ID, "error", buildErr)
			return
		}

		_, saveErr := fallback.First(ctx, u.logger, "profile_lazy_create",
			fallback.Strategy[struct{}]{
				Name: "database_direct",
				Run: func(ctx context.Context) (struct{}, error) {
					return struct{}{}, u.profileRepo.Upsert(ctx, profile)
				},
			},
			fallback.Strategy[struct{}]{
				Name: "rest_api",
				Run: func(ctx context.Context) (struct{}, error) {
					return struct{}{}, u.profileAPI.SaveProfile(ctx, session.Token, profile)
				},
			},
		)
		if saveErr != nil {
			u.logger.Warn("lazy profile creation failed on every path", "identity_id", identity.ID, "error", saveErr)
		}

	default:
		u.logger.Warn("profile lookup failed after sign-in", "identity_id", identity.ID, "error", err)
	}
}

// SignOut revokes the session behind the token.
func (u *AuthUsecase) SignOut(ctx context.Context, locale, token string) error {
	if err := u.authGateway.SignOut(ctx, token); err != nil {
		u.logger.Error("sign-out failed", "error", err)
		u.notifier.Error(locale, "SIGNOUT_ERROR")
		return err
	}

	u.notifier.Success(locale, "SIGNOUT_SUCCESS")
	return nil
}

// ValidateBearer resolves a bearer token to a live session.
func (u *AuthUsecase) ValidateBearer(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	return u.authGateway.GetSession(ctx, token)
}
