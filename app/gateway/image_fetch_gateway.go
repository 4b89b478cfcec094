package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"studio/app/domain"
	"studio/app/port"
)

// Some avatar hosts refuse requests without browser-looking headers, so the
// proxy presents itself as one.
const (
	fetchUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	fetchReferer   = "https://www.google.com/"
)

// ImageFetchGateway fetches external avatar images for the proxy endpoint.
type ImageFetchGateway struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewImageFetchGateway creates a new image fetch gateway. A nil client gets
// a default with a 10-second timeout.
func NewImageFetchGateway(httpClient *http.Client, logger *slog.Logger) port.ImageFetchPort {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &ImageFetchGateway{
		httpClient: httpClient,
		logger:     logger.With("component", "image_fetch_gateway"),
	}
}

// FetchImage fetches an image from an external URL. The response must carry
// an image content type; bytes beyond options.MaxSize are rejected.
func (g *ImageFetchGateway) FetchImage(ctx context.Context, imageURL *url.URL, options *domain.ImageFetchOptions) (*domain.ImageFetchResult, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if options == nil {
		options = domain.NewImageFetchOptions()
	}

	fetchCtx, cancel := context.WithTimeout(ctx, options.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(fetchCtx, http.MethodGet, imageURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", fetchUserAgent)
	req.Header.Set("Referer", fetchReferer)
	req.Header.Set("Accept", "image/webp, image/jpeg, image/png, image/gif")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			g.logger.Warn("upstream image fetch timed out", "url", imageURL.String())
			return nil, domain.ErrUpstreamTimeout
		}
		g.logger.Error("upstream image fetch failed", "url", imageURL.String(), "error", err)
		return nil, fmt.Errorf("image fetch failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			g.logger.Debug("failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("image fetch failed with status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !domain.IsImageContentType(contentType) {
		g.logger.Warn("upstream response is not an image",
			"url", imageURL.String(),
			"content_type", contentType)
		return nil, domain.ErrNotAnImage
	}

	if header := resp.Header.Get("Content-Length"); header != "" {
		if length, err := strconv.ParseInt(header, 10, 64); err == nil && length > int64(options.MaxSize) {
			return nil, fmt.Errorf("image too large: %d bytes", length)
		}
	}

	// +1 so an oversized body is detectable
	data, err := io.ReadAll(io.LimitReader(resp.Body, int64(options.MaxSize)+1))
	if err != nil {
		if isTimeout(err) {
			return nil, domain.ErrUpstreamTimeout
		}
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}

	if len(data) > options.MaxSize {
		return nil, fmt.Errorf("image too large: exceeds %d bytes", options.MaxSize)
	}

	return &domain.ImageFetchResult{
		URL:         imageURL.String(),
		ContentType: contentType,
		Data:        data,
		Size:        len(data),
		FetchedAt:   time.Now(),
	}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return strings.Contains(err.Error(), "timeout") ||
		strings.Contains(err.Error(), "context deadline exceeded")
}
