package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"studio/app/domain"
	"studio/app/port"
)

// ImageProxyHandler serves proxied external images.
type ImageProxyHandler struct {
	proxyUsecase port.ImageProxyUsecase
	logger       *slog.Logger
}

// NewImageProxyHandler creates a new image proxy handler.
func NewImageProxyHandler(proxyUsecase port.ImageProxyUsecase, logger *slog.Logger) *ImageProxyHandler {
	return &ImageProxyHandler{
		proxyUsecase: proxyUsecase,
		logger:       logger,
	}
}

// ProxyImage fetches the image behind the url query parameter and streams
// it back with long-lived caching and open CORS, so review avatars hosted
// anywhere render on the site.
func (h *ImageProxyHandler) ProxyImage(c echo.Context) error {
	ctx := c.Request().Context()
	rawURL := c.QueryParam("url")

	result, err := h.proxyUsecase.Execute(ctx, rawURL)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidImageURL):
			return c.String(http.StatusBadRequest, "Invalid image URL")
		case errors.Is(err, domain.ErrUpstreamTimeout):
			return c.String(http.StatusGatewayTimeout, "Image fetch timed out")
		case errors.Is(err, domain.ErrNotAnImage):
			return c.String(http.StatusBadRequest, "URL does not point to an image")
		default:
			h.logger.Error("image proxy failed", "url", rawURL, "error", err)
			return c.String(http.StatusInternalServerError, "Failed to fetch image")
		}
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	c.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, "*")
	return c.Blob(http.StatusOK, result.ContentType, result.Data)
}
