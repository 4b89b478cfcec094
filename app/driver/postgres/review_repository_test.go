package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"studio/app/domain"
)

func TestReviewRepositoryInsert(t *testing.T) {
	t.Run("stores the review and backfills the generated id", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewReviewRepository(mock, testLogger())

		review := &domain.Review{
			UserID:      uuid.New(),
			Username:    "maria",
			Rating:      5,
			Title:       "Wonderful session",
			Description: "The photos came out great.",
			Image:       "/statics/user.svg",
			CreatedAt:   time.Now(),
		}

		mock.ExpectQuery("INSERT INTO reviews.*RETURNING id").
			WithArgs(review.UserID, review.Username, review.Rating, review.Title, review.Description, review.Image, review.CreatedAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))

		require.NoError(t, repo.Insert(context.Background(), review))
		require.Equal(t, int64(42), review.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps database errors", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewReviewRepository(mock, testLogger())

		review := &domain.Review{UserID: uuid.New(), Rating: 4, Title: "Great shoot"}

		mock.ExpectQuery("INSERT INTO reviews").
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(errors.New("constraint violation"))

		err = repo.Insert(context.Background(), review)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to insert review")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReviewRepositoryList(t *testing.T) {
	t.Run("fetches a page newest first", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewReviewRepository(mock, testLogger())

		now := time.Now()
		userA := uuid.New()
		userB := uuid.New()

		mock.ExpectQuery("SELECT id, user_id, username, rating, title, description, image, created_at.*FROM reviews.*ORDER BY created_at DESC.*LIMIT \\$1 OFFSET \\$2").
			WithArgs(5, 0).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "username", "rating", "title", "description", "image", "created_at"}).
				AddRow(int64(2), userA, "maria", 5, "Wonderful session", "Loved it.", "/statics/user.svg", now).
				AddRow(int64(1), userB, "jon", 4, "Great shoot", "Would return.", "/statics/user.svg", now.Add(-time.Hour)))

		reviews, err := repo.List(context.Background(), 5, 0)

		require.NoError(t, err)
		require.Len(t, reviews, 2)
		require.Equal(t, int64(2), reviews[0].ID)
		require.Equal(t, "maria", reviews[0].Username)
		require.Equal(t, 5, reviews[0].Rating)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns an empty slice when the page is past the end", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewReviewRepository(mock, testLogger())

		mock.ExpectQuery("SELECT id, user_id, username, rating, title, description, image, created_at.*FROM reviews").
			WithArgs(5, 100).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "username", "rating", "title", "description", "image", "created_at"}))

		reviews, err := repo.List(context.Background(), 5, 100)

		require.NoError(t, err)
		require.Empty(t, reviews)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReviewRepositoryCount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReviewRepository(mock, testLogger())

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM reviews").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(17))

	count, err := repo.Count(context.Background())

	require.NoError(t, err)
	require.Equal(t, 17, count)
	require.NoError(t, mock.ExpectationsWereMet())
}
