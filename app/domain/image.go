package domain

import (
	"net/url"
	"strings"
	"time"
)

// Avatar upload constraints, enforced by both the sign-up schema and the
// upload endpoint.
const (
	AvatarMaxSize = 5 * 1024 * 1024
)

// AllowedAvatarTypes are the accepted avatar content types.
var AllowedAvatarTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}

// IsAllowedAvatarType reports whether a content type may be stored as an
// avatar.
func IsAllowedAvatarType(contentType string) bool {
	for _, t := range AllowedAvatarTypes {
		if contentType == t {
			return true
		}
	}
	return false
}

// ImageFetchOptions bounds an upstream image-proxy fetch.
type ImageFetchOptions struct {
	MaxSize int
	Timeout time.Duration
}

// NewImageFetchOptions returns the proxy defaults.
func NewImageFetchOptions() *ImageFetchOptions {
	return &ImageFetchOptions{
		MaxSize: 10 * 1024 * 1024,
		Timeout: 10 * time.Second,
	}
}

// ImageFetchResult carries proxied image bytes back to the handler.
type ImageFetchResult struct {
	URL         string
	ContentType string
	Data        []byte
	Size        int
	FetchedAt   time.Time
}

// ValidateImageURL parses a raw proxy target and enforces http/https.
func ValidateImageURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, ErrInvalidImageURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, ErrInvalidImageURL
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, ErrInvalidImageURL
	}

	if u.Host == "" {
		return nil, ErrInvalidImageURL
	}

	return u, nil
}

// IsImageContentType reports whether an upstream response body is an image.
func IsImageContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}
