package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"studio/app/domain"
	"studio/app/mocks"
)

func proxyContext(rawURL string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/proxy-image?url="+url.QueryEscape(rawURL), nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestImageProxyHandlerProxyImage(t *testing.T) {
	t.Run("streams the image with caching and open CORS", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		proxyUsecase := mocks.NewMockImageProxyUsecase(ctrl)
		handler := NewImageProxyHandler(proxyUsecase, discardLogger())

		imageURL := "https://cdn.example.com/avatars/a.jpg"
		c, rec := proxyContext(imageURL)

		proxyUsecase.EXPECT().Execute(gomock.Any(), imageURL).Return(&domain.ImageFetchResult{
			URL:         imageURL,
			ContentType: "image/jpeg",
			Data:        []byte("jpeg-bytes"),
			Size:        10,
			FetchedAt:   time.Now(),
		}, nil)

		require.NoError(t, handler.ProxyImage(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/jpeg", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
		assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Equal(t, "jpeg-bytes", rec.Body.String())
	})

	t.Run("400 for an invalid URL", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		proxyUsecase := mocks.NewMockImageProxyUsecase(ctrl)
		handler := NewImageProxyHandler(proxyUsecase, discardLogger())

		c, rec := proxyContext("not a url")

		proxyUsecase.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil, domain.ErrInvalidImageURL)

		require.NoError(t, handler.ProxyImage(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid image URL", rec.Body.String())
	})

	t.Run("504 when the upstream times out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		proxyUsecase := mocks.NewMockImageProxyUsecase(ctrl)
		handler := NewImageProxyHandler(proxyUsecase, discardLogger())

		c, rec := proxyContext("https://slow.example.com/a.jpg")

		proxyUsecase.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUpstreamTimeout)

		require.NoError(t, handler.ProxyImage(c))
		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
		assert.Equal(t, "Image fetch timed out", rec.Body.String())
	})

	t.Run("400 when the upstream is not an image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		proxyUsecase := mocks.NewMockImageProxyUsecase(ctrl)
		handler := NewImageProxyHandler(proxyUsecase, discardLogger())

		c, rec := proxyContext("https://example.com/page.html")

		proxyUsecase.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil, domain.ErrNotAnImage)

		require.NoError(t, handler.ProxyImage(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "URL does not point to an image", rec.Body.String())
	})

	t.Run("500 for other failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		proxyUsecase := mocks.NewMockImageProxyUsecase(ctrl)
		handler := NewImageProxyHandler(proxyUsecase, discardLogger())

		c, rec := proxyContext("https://example.com/a.jpg")

		proxyUsecase.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		require.NoError(t, handler.ProxyImage(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to fetch image", rec.Body.String())
	})
}
