package usecase

import (
	"context"
	"log/slog"

	"studio/app/domain"
	"studio/app/port"
)

// ImageProxyUsecase validates a proxy target and fetches it through the
// image gateway.
type ImageProxyUsecase struct {
	fetcher port.ImageFetchPort
	options *domain.ImageFetchOptions
	logger  *slog.Logger
}

// NewImageProxyUsecase creates an image proxy usecase with the given fetch
// options. Nil options get the defaults.
func NewImageProxyUsecase(fetcher port.ImageFetchPort, options *domain.ImageFetchOptions, logger *slog.Logger) *ImageProxyUsecase {
	if options == nil {
		options = domain.NewImageFetchOptions()
	}
	return &ImageProxyUsecase{
		fetcher: fetcher,
		options: options,
		logger:  logger.With("component", "image_proxy_usecase"),
	}
}

// Execute parses and validates rawURL, then fetches the image.
func (u *ImageProxyUsecase) Execute(ctx context.Context, rawURL string) (*domain.ImageFetchResult, error) {
	imageURL, err := domain.ValidateImageURL(rawURL)
	if err != nil {
		return nil, err
	}

	result, err := u.fetcher.FetchImage(ctx, imageURL, u.options)
	if err != nil {
		return nil, err
	}

	u.logger.Debug("image proxied",
		"url", result.URL,
		"content_type", result.ContentType,
		"size", result.Size)
	return result, nil
}
