package domain

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReviewInput(t *testing.T) {
	tests := []struct {
		name        string
		rating      int
		title       string
		description string
		wantErr     error
	}{
		{"valid", 5, "Great session", "Loved the portraits.", nil},
		{"zero rating reported as missing", 0, "Great session", "Loved it.", ErrMissingFields},
		{"empty title reported as missing", 4, "", "Loved it.", ErrMissingFields},
		{"empty description reported as missing", 4, "Great session", "", ErrMissingFields},
		{"rating above range", 6, "Great session", "Loved it.", ErrInvalidRating},
		{"rating below range", -1, "Great session", "Loved it.", ErrInvalidRating},
		{"title one short of minimum", 4, "Nice", "Loved it.", ErrInvalidTitle},
		{"title exactly at minimum", 4, "Wooow", "Loved it.", nil},
		{"title exactly at maximum", 4, strings.Repeat("a", 40), "Loved it.", nil},
		{"title one past maximum", 4, strings.Repeat("a", 41), "Loved it.", ErrInvalidTitle},
		{"accented title counted per character, below minimum", 4, "éééé", "Loved it.", ErrInvalidTitle},
		{"accented title counted per character, at minimum", 4, "ééééé", "Loved it.", nil},
		{"accented title counted per character, at maximum", 4, strings.Repeat("é", 40), "Loved it.", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReviewInput(tt.rating, tt.title, tt.description)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNewReviewDefaults(t *testing.T) {
	identity := Identity{
		ID:    uuid.New(),
		Email: "carla@example.com",
		Traits: IdentityTraits{
			FullName: "Carla Gómez",
		},
	}

	t.Run("username snapshot from full name", func(t *testing.T) {
		review, err := NewReview(identity, 5, "Wonderful shoot", "Very professional.", "")
		require.NoError(t, err)
		assert.Equal(t, "Carla Gómez", review.Username)
		assert.Equal(t, identity.ID, review.UserID)
	})

	t.Run("username falls back to email local part", func(t *testing.T) {
		anon := Identity{ID: uuid.New(), Email: "carla@example.com"}
		review, err := NewReview(anon, 5, "Wonderful shoot", "Very professional.", "")
		require.NoError(t, err)
		assert.Equal(t, "carla", review.Username)
	})

	t.Run("username falls back to User", func(t *testing.T) {
		anon := Identity{ID: uuid.New()}
		review, err := NewReview(anon, 5, "Wonderful shoot", "Very professional.", "")
		require.NoError(t, err)
		assert.Equal(t, "User", review.Username)
	})

	t.Run("empty image gets placeholder", func(t *testing.T) {
		review, err := NewReview(identity, 5, "Wonderful shoot", "Very professional.", "")
		require.NoError(t, err)
		assert.Equal(t, PlaceholderAvatar, review.Image)
	})

	t.Run("supplied image kept", func(t *testing.T) {
		review, err := NewReview(identity, 5, "Wonderful shoot", "Very professional.", "https://cdn.example.com/a.jpg")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/a.jpg", review.Image)
	})
}

func TestResolveAvatarURL(t *testing.T) {
	tests := []struct {
		name  string
		image string
		want  string
	}{
		{"empty falls back to placeholder", "", PlaceholderAvatar},
		{"local path passes through", "/statics/user.svg", "/statics/user.svg"},
		{"data URI passes through", "data:image/png;base64,AAAA", "data:image/png;base64,AAAA"},
		{"relative path falls back", "statics/user.svg", PlaceholderAvatar},
		{"garbage falls back", "not a url at all", PlaceholderAvatar},
		{"scheme without host falls back", "https://", PlaceholderAvatar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveAvatarURL(tt.image))
		})
	}
}

func TestResolveAvatarURLProxiesExternal(t *testing.T) {
	external := "https://lh3.googleusercontent.com/a/photo.jpg?sz=50"

	resolved := ResolveAvatarURL(external)

	require.True(t, strings.HasPrefix(resolved, ImageProxyPath+"?url="))

	// The original URL must survive the round trip through query escaping.
	parsed, err := url.Parse(resolved)
	require.NoError(t, err)
	assert.Equal(t, external, parsed.Query().Get("url"))
}
