package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"studio/app/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string {
	return &s
}

func TestProfileRepositoryUpsert(t *testing.T) {
	t.Run("inserts a new row", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewProfileRepository(mock, testLogger())

		profile := &domain.Profile{
			AuthID:    uuid.New(),
			FullName:  "Maria Lopez",
			Email:     "maria@example.com",
			Phone:     strPtr("+14155550123"),
			AvatarURL: strPtr("https://cdn.example.com/avatars/a.jpg"),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		mock.ExpectExec("INSERT INTO profiles.*ON CONFLICT \\(auth_id\\) DO UPDATE").
			WithArgs(profile.AuthID, profile.FullName, profile.Email, profile.Phone, profile.AvatarURL, profile.CreatedAt, profile.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, repo.Upsert(context.Background(), profile))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps database errors", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewProfileRepository(mock, testLogger())

		profile := &domain.Profile{AuthID: uuid.New(), FullName: "x", Email: "x@example.com"}

		mock.ExpectExec("INSERT INTO profiles").
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(errors.New("connection refused"))

		err = repo.Upsert(context.Background(), profile)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to upsert profile")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProfileRepositoryGetByAuthID(t *testing.T) {
	t.Run("returns the stored profile", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewProfileRepository(mock, testLogger())

		authID := uuid.New()
		now := time.Now()

		mock.ExpectQuery("SELECT auth_id, full_name, email, phone, avatar_url, created_at, updated_at.*FROM profiles.*WHERE auth_id = \\$1").
			WithArgs(authID).
			WillReturnRows(pgxmock.NewRows([]string{"auth_id", "full_name", "email", "phone", "avatar_url", "created_at", "updated_at"}).
				AddRow(authID, "Maria Lopez", "maria@example.com", strPtr("+14155550123"), (*string)(nil), now, now))

		profile, err := repo.GetByAuthID(context.Background(), authID)

		require.NoError(t, err)
		require.Equal(t, authID, profile.AuthID)
		require.Equal(t, "Maria Lopez", profile.FullName)
		require.Equal(t, "maria@example.com", profile.Email)
		require.NotNil(t, profile.Phone)
		require.Equal(t, "+14155550123", *profile.Phone)
		require.Nil(t, profile.AvatarURL)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing rows to ErrProfileNotFound", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewProfileRepository(mock, testLogger())

		authID := uuid.New()

		mock.ExpectQuery("SELECT auth_id, full_name, email, phone, avatar_url, created_at, updated_at.*FROM profiles").
			WithArgs(authID).
			WillReturnError(pgx.ErrNoRows)

		_, err = repo.GetByAuthID(context.Background(), authID)
		require.ErrorIs(t, err, domain.ErrProfileNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProfileRepositoryUpdate(t *testing.T) {
	t.Run("rewrites mutable fields", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewProfileRepository(mock, testLogger())

		profile := &domain.Profile{
			AuthID:    uuid.New(),
			FullName:  "Maria Lopez",
			Phone:     strPtr("+14155550123"),
			AvatarURL: nil,
			UpdatedAt: time.Now(),
		}

		mock.ExpectExec("UPDATE profiles.*SET full_name = \\$2, phone = \\$3, avatar_url = \\$4, updated_at = \\$5.*WHERE auth_id = \\$1").
			WithArgs(profile.AuthID, profile.FullName, profile.Phone, profile.AvatarURL, profile.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.Update(context.Background(), profile))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports ErrProfileNotFound when no row matched", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewProfileRepository(mock, testLogger())

		profile := &domain.Profile{AuthID: uuid.New(), UpdatedAt: time.Now()}

		mock.ExpectExec("UPDATE profiles").
			WithArgs(profile.AuthID, profile.FullName, profile.Phone, profile.AvatarURL, profile.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err = repo.Update(context.Background(), profile)
		require.ErrorIs(t, err, domain.ErrProfileNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
