package usecase

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"studio/app/domain"
	"studio/app/mocks"
)

func TestReviewUsecaseGetPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockReviewRepository(ctrl)
	uc := NewReviewUsecase(repo, slog.Default())
	ctx := context.Background()

	t.Run("returns page with authoritative count", func(t *testing.T) {
		reviews := []domain.Review{{ID: 1, Title: "Great session"}}
		repo.EXPECT().Count(ctx).Return(12, nil)
		repo.EXPECT().List(ctx, 5, 0).Return(reviews, nil)

		page, err := uc.GetPage(ctx, 5, 0)

		require.NoError(t, err)
		assert.Equal(t, 12, page.Count)
		assert.Equal(t, reviews, page.Data)
	})

	t.Run("defaults limit and clamps offset", func(t *testing.T) {
		repo.EXPECT().Count(ctx).Return(0, nil)
		repo.EXPECT().List(ctx, ReviewPageSize, 0).Return(nil, nil)

		page, err := uc.GetPage(ctx, 0, -3)

		require.NoError(t, err)
		assert.NotNil(t, page.Data, "empty page is an empty slice, not nil")
		assert.Empty(t, page.Data)
	})

	t.Run("count failure propagates", func(t *testing.T) {
		repo.EXPECT().Count(ctx).Return(0, errors.New("db down"))

		_, err := uc.GetPage(ctx, 5, 0)
		assert.Error(t, err)
	})

	t.Run("list failure propagates", func(t *testing.T) {
		repo.EXPECT().Count(ctx).Return(12, nil)
		repo.EXPECT().List(ctx, 5, 5).Return(nil, errors.New("db down"))

		_, err := uc.GetPage(ctx, 5, 5)
		assert.Error(t, err)
	})
}

func TestReviewUsecaseSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockReviewRepository(ctrl)
	uc := NewReviewUsecase(repo, slog.Default())
	ctx := context.Background()

	identity := domain.Identity{
		ID:    uuid.New(),
		Email: "ana@example.com",
		Traits: domain.IdentityTraits{
			FullName: "Ana Pérez",
		},
	}

	t.Run("valid submission stored with identity stamp", func(t *testing.T) {
		repo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, review *domain.Review) error {
				assert.Equal(t, identity.ID, review.UserID)
				assert.Equal(t, "Ana Pérez", review.Username)
				assert.Equal(t, domain.PlaceholderAvatar, review.Image)
				return nil
			})

		err := uc.Submit(ctx, identity, domain.ReviewInput{
			Rating:      5,
			Title:       "Wonderful shoot",
			Description: "Very professional.",
		})
		assert.NoError(t, err)
	})

	t.Run("validation failure skips insert", func(t *testing.T) {
		err := uc.Submit(ctx, identity, domain.ReviewInput{
			Rating:      9,
			Title:       "Wonderful shoot",
			Description: "Very professional.",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidRating)
	})

	t.Run("insert failure propagates", func(t *testing.T) {
		repo.EXPECT().Insert(ctx, gomock.Any()).Return(errors.New("db down"))

		err := uc.Submit(ctx, identity, domain.ReviewInput{
			Rating:      4,
			Title:       "Wonderful shoot",
			Description: "Very professional.",
		})
		assert.Error(t, err)
	})
}
