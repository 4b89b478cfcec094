package port

//go:generate mockgen -source=image_port.go -destination=../mocks/mock_image_port.go -package=mocks

import (
	"context"
	"net/url"

	"studio/app/domain"
)

// ImageProxyUsecase resolves an external image URL to proxied bytes.
type ImageProxyUsecase interface {
	Execute(ctx context.Context, rawURL string) (*domain.ImageFetchResult, error)
}

// ImageFetchPort fetches an external image through HTTP.
type ImageFetchPort interface {
	FetchImage(ctx context.Context, imageURL *url.URL, options *domain.ImageFetchOptions) (*domain.ImageFetchResult, error)
}
