package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"studio/app/domain"
	"studio/app/mocks"
)

func bearerRequest(token string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func liveSession() *domain.Session {
	return &domain.Session{
		Token:     "ory_st_abc",
		Identity:  domain.Identity{ID: uuid.New(), Email: "maria@example.com"},
		Active:    true,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestRequireAuth(t *testing.T) {
	t.Run("stashes the session and calls the handler", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authUsecase := mocks.NewMockAuthUsecase(ctrl)
		session := liveSession()
		authUsecase.EXPECT().ValidateBearer(gomock.Any(), "ory_st_abc").Return(session, nil)

		mw := NewAuthMiddleware(authUsecase, gateLogger()).RequireAuth()
		c, rec := bearerRequest("ory_st_abc")

		var stashed *domain.Session
		err := mw(func(c echo.Context) error {
			stashed = SessionFrom(c)
			return c.NoContent(http.StatusOK)
		})(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, session, stashed)
	})

	t.Run("401 without a token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authUsecase := mocks.NewMockAuthUsecase(ctrl)
		mw := NewAuthMiddleware(authUsecase, gateLogger()).RequireAuth()
		c, _ := bearerRequest("")

		err := mw(func(c echo.Context) error {
			t.Fatal("handler should not run")
			return nil
		})(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("401 when the token does not validate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authUsecase := mocks.NewMockAuthUsecase(ctrl)
		authUsecase.EXPECT().ValidateBearer(gomock.Any(), "expired").Return(nil, domain.ErrUnauthorized)

		mw := NewAuthMiddleware(authUsecase, gateLogger()).RequireAuth()
		c, _ := bearerRequest("expired")

		err := mw(func(c echo.Context) error {
			t.Fatal("handler should not run")
			return nil
		})(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	t.Run("passes through without a token and stashes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authUsecase := mocks.NewMockAuthUsecase(ctrl)
		mw := NewAuthMiddleware(authUsecase, gateLogger()).OptionalAuth()
		c, rec := bearerRequest("")

		err := mw(func(c echo.Context) error {
			assert.Nil(t, SessionFrom(c))
			return c.NoContent(http.StatusOK)
		})(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("passes through when validation fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authUsecase := mocks.NewMockAuthUsecase(ctrl)
		authUsecase.EXPECT().ValidateBearer(gomock.Any(), "expired").Return(nil, domain.ErrUnauthorized)

		mw := NewAuthMiddleware(authUsecase, gateLogger()).OptionalAuth()
		c, rec := bearerRequest("expired")

		err := mw(func(c echo.Context) error {
			assert.Nil(t, SessionFrom(c))
			return c.NoContent(http.StatusOK)
		})(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("stashes a validated session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authUsecase := mocks.NewMockAuthUsecase(ctrl)
		session := liveSession()
		authUsecase.EXPECT().ValidateBearer(gomock.Any(), "ory_st_abc").Return(session, nil)

		mw := NewAuthMiddleware(authUsecase, gateLogger()).OptionalAuth()
		c, rec := bearerRequest("ory_st_abc")

		err := mw(func(c echo.Context) error {
			assert.Equal(t, session, SessionFrom(c))
			return c.NoContent(http.StatusOK)
		})(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
