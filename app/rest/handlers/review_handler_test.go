package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"studio/app/domain"
	"studio/app/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func jsonContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withSession(c echo.Context) *domain.Session {
	session := &domain.Session{
		Token: "ory_st_test",
		Identity: domain.Identity{
			ID:    uuid.New(),
			Email: "maria@example.com",
			Traits: domain.IdentityTraits{
				FullName: "Maria Lopez",
			},
		},
		Active: true,
	}
	c.Set("session", session)
	return session
}

func TestReviewHandlerGetReviews(t *testing.T) {
	t.Run("returns the page with the authoritative count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reviewUsecase := mocks.NewMockReviewUsecase(ctrl)
		handler := NewReviewHandler(reviewUsecase, discardLogger())

		c, rec := jsonContext(http.MethodPost, "/api/db/get-reviews", `{"limit":5,"offset":0}`)

		page := &domain.ReviewPage{
			Data:  []domain.Review{{ID: 1, Username: "maria", Rating: 5, Title: "Wonderful session"}},
			Count: 12,
		}
		reviewUsecase.EXPECT().GetPage(gomock.Any(), 5, 0).Return(page, nil)

		require.NoError(t, handler.GetReviews(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"count":12`)
		assert.Contains(t, rec.Body.String(), "Wonderful session")
	})

	t.Run("500 when the feed cannot be fetched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reviewUsecase := mocks.NewMockReviewUsecase(ctrl)
		handler := NewReviewHandler(reviewUsecase, discardLogger())

		c, rec := jsonContext(http.MethodPost, "/api/db/get-reviews", `{"limit":5,"offset":0}`)

		reviewUsecase.EXPECT().GetPage(gomock.Any(), 5, 0).Return(nil, errors.New("db down"))

		require.NoError(t, handler.GetReviews(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestReviewHandlerInsertReview(t *testing.T) {
	t.Run("401 without a session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reviewUsecase := mocks.NewMockReviewUsecase(ctrl)
		handler := NewReviewHandler(reviewUsecase, discardLogger())

		c, rec := jsonContext(http.MethodPost, "/api/db/insert-review", `{"rating":5,"title":"Wonderful session","description":"Loved it."}`)

		require.NoError(t, handler.InsertReview(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Unauthorized. Please sign in to submit a review.")
	})

	t.Run("200 on success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reviewUsecase := mocks.NewMockReviewUsecase(ctrl)
		handler := NewReviewHandler(reviewUsecase, discardLogger())

		c, rec := jsonContext(http.MethodPost, "/api/db/insert-review", `{"rating":5,"title":"Wonderful session","description":"Loved it."}`)
		session := withSession(c)

		reviewUsecase.EXPECT().
			Submit(gomock.Any(), session.Identity, domain.ReviewInput{Rating: 5, Title: "Wonderful session", Description: "Loved it."}).
			Return(nil)

		require.NoError(t, handler.InsertReview(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "review saved")
	})

	t.Run("validation failures map to fixed messages", func(t *testing.T) {
		cases := []struct {
			name    string
			err     error
			message string
		}{
			{"missing fields", domain.ErrMissingFields, "Rating, title, and description are required."},
			{"rating out of range", domain.ErrInvalidRating, "Rating must be between 1 and 5."},
			{"title length", domain.ErrInvalidTitle, "Title must be between 5 and 40 characters."},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				reviewUsecase := mocks.NewMockReviewUsecase(ctrl)
				handler := NewReviewHandler(reviewUsecase, discardLogger())

				c, rec := jsonContext(http.MethodPost, "/api/db/insert-review", `{"rating":0,"title":"","description":""}`)
				withSession(c)

				reviewUsecase.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(tc.err)

				require.NoError(t, handler.InsertReview(c))
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), tc.message)
			})
		}
	})

	t.Run("500 when the insert fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reviewUsecase := mocks.NewMockReviewUsecase(ctrl)
		handler := NewReviewHandler(reviewUsecase, discardLogger())

		c, rec := jsonContext(http.MethodPost, "/api/db/insert-review", `{"rating":5,"title":"Wonderful session","description":"Loved it."}`)
		withSession(c)

		reviewUsecase.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		require.NoError(t, handler.InsertReview(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
