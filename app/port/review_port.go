package port

//go:generate mockgen -source=review_port.go -destination=../mocks/mock_review_port.go -package=mocks

import (
	"context"

	"studio/app/domain"
)

// ReviewUsecase serves the review feed and accepts submissions.
type ReviewUsecase interface {
	// GetPage fetches limit reviews starting at offset, newest first, plus
	// the authoritative total count.
	GetPage(ctx context.Context, limit, offset int) (*domain.ReviewPage, error)

	// Submit validates and stores a review for an authenticated identity.
	Submit(ctx context.Context, identity domain.Identity, input domain.ReviewInput) error
}

// ReviewRepository is the database access for reviews.
type ReviewRepository interface {
	Insert(ctx context.Context, review *domain.Review) error
	List(ctx context.Context, limit, offset int) ([]domain.Review, error)
	Count(ctx context.Context) (int, error)
}

// AdminRepository backs the session gate's existence check.
type AdminRepository interface {
	Exists(ctx context.Context, username string) (bool, error)
}
