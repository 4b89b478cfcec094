package usecase

import (
	"context"
	"log/slog"

	"studio/app/domain"
	"studio/app/port"
)

// ReviewPageSize is how many reviews a feed page carries.
const ReviewPageSize = 5

// ReviewUsecase serves review pages and accepts submissions.
type ReviewUsecase struct {
	reviewRepo port.ReviewRepository
	logger     *slog.Logger
}

// NewReviewUsecase creates a new review usecase.
func NewReviewUsecase(reviewRepo port.ReviewRepository, logger *slog.Logger) *ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo: reviewRepo,
		logger:     logger.With("component", "review_usecase"),
	}
}

// GetPage returns limit reviews starting at offset, newest first, together
// with the authoritative total count. The count is taken fresh on every
// page so the feed notices reviews submitted since the previous fetch.
func (u *ReviewUsecase) GetPage(ctx context.Context, limit, offset int) (*domain.ReviewPage, error) {
	if limit <= 0 {
		limit = ReviewPageSize
	}
	if offset < 0 {
		offset = 0
	}

	count, err := u.reviewRepo.Count(ctx)
	if err != nil {
		u.logger.Error("review count failed", "error", err)
		return nil, err
	}

	reviews, err := u.reviewRepo.List(ctx, limit, offset)
	if err != nil {
		u.logger.Error("review list failed", "limit", limit, "offset", offset, "error", err)
		return nil, err
	}

	if reviews == nil {
		reviews = []domain.Review{}
	}

	return &domain.ReviewPage{Data: reviews, Count: count}, nil
}

// Submit validates and stores a review stamped with the identity.
func (u *ReviewUsecase) Submit(ctx context.Context, identity domain.Identity, input domain.ReviewInput) error {
	review, err := domain.NewReview(identity, input.Rating, input.Title, input.Description, input.Image)
	if err != nil {
		return err
	}

	if err := u.reviewRepo.Insert(ctx, review); err != nil {
		u.logger.Error("review insert failed", "user_id", identity.ID, "error", err)
		return err
	}

	u.logger.Info("review stored", "review_id", review.ID, "user_id", identity.ID)
	return nil
}
