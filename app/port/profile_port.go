package port

//go:generate mockgen -source=profile_port.go -destination=../mocks/mock_profile_port.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"studio/app/domain"
)

// ProfileRepository is the direct database path for profile rows.
type ProfileRepository interface {
	// Upsert inserts or updates the row keyed on auth_id.
	Upsert(ctx context.Context, profile *domain.Profile) error

	// GetByAuthID returns the row or domain.ErrProfileNotFound.
	GetByAuthID(ctx context.Context, authID uuid.UUID) (*domain.Profile, error)

	// Update rewrites the mutable fields of an existing row.
	Update(ctx context.Context, profile *domain.Profile) error
}

// ProfileAPIClient is the REST fallback path: the same profile/avatar writes
// replayed through the public /api/db endpoints with a bearer token.
type ProfileAPIClient interface {
	SaveProfile(ctx context.Context, token string, profile *domain.Profile) error
	UploadAvatar(ctx context.Context, token string, avatar *domain.AvatarUpload) (string, error)
}

// StorageGateway is the direct object-store path for avatar blobs.
type StorageGateway interface {
	// Upload stores the blob under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}
