package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"studio/app/domain"
	"studio/app/port"
)

// ProfileRepository implements port.ProfileRepository for PostgreSQL
type ProfileRepository struct {
	db     Querier
	logger *slog.Logger
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db Querier, logger *slog.Logger) port.ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger.With("component", "profile_repository"),
	}
}

// Upsert inserts or updates the profile row keyed on auth_id.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (auth_id, full_name, email, phone, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (auth_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(ctx, query,
		profile.AuthID,
		profile.FullName,
		profile.Email,
		profile.Phone,
		profile.AvatarURL,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("failed to upsert profile", "auth_id", profile.AuthID, "error", err)
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	r.logger.Info("profile upserted", "auth_id", profile.AuthID)
	return nil
}

// GetByAuthID returns the profile row for an identity.
func (r *ProfileRepository) GetByAuthID(ctx context.Context, authID uuid.UUID) (*domain.Profile, error) {
	query := `
		SELECT auth_id, full_name, email, phone, avatar_url, created_at, updated_at
		FROM profiles
		WHERE auth_id = $1`

	profile := &domain.Profile{}
	err := r.db.QueryRow(ctx, query, authID).Scan(
		&profile.AuthID,
		&profile.FullName,
		&profile.Email,
		&profile.Phone,
		&profile.AvatarURL,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		r.logger.Error("failed to get profile", "auth_id", authID, "error", err)
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

// Update rewrites the mutable fields of an existing row.
func (r *ProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET full_name = $2, phone = $3, avatar_url = $4, updated_at = $5
		WHERE auth_id = $1`

	tag, err := r.db.Exec(ctx, query,
		profile.AuthID,
		profile.FullName,
		profile.Phone,
		profile.AvatarURL,
		profile.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("failed to update profile", "auth_id", profile.AuthID, "error", err)
		return fmt.Errorf("failed to update profile: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}

	return nil
}
