package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"studio/app/domain"
	"studio/app/port"
)

// ReviewRepository implements port.ReviewRepository for PostgreSQL
type ReviewRepository struct {
	db     Querier
	logger *slog.Logger
}

// NewReviewRepository creates a new PostgreSQL review repository
func NewReviewRepository(db Querier, logger *slog.Logger) port.ReviewRepository {
	return &ReviewRepository{
		db:     db,
		logger: logger.With("component", "review_repository"),
	}
}

// Insert stores a new review. Reviews are immutable after this point.
func (r *ReviewRepository) Insert(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (user_id, username, rating, title, description, image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		review.UserID,
		review.Username,
		review.Rating,
		review.Title,
		review.Description,
		review.Image,
		review.CreatedAt,
	).Scan(&review.ID)

	if err != nil {
		r.logger.Error("failed to insert review", "user_id", review.UserID, "error", err)
		return fmt.Errorf("failed to insert review: %w", err)
	}

	r.logger.Info("review inserted", "id", review.ID, "user_id", review.UserID)
	return nil
}

// List fetches a page of reviews, newest first.
func (r *ReviewRepository) List(ctx context.Context, limit, offset int) ([]domain.Review, error) {
	query := `
		SELECT id, user_id, username, rating, title, description, image, created_at
		FROM reviews
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error("failed to list reviews", "limit", limit, "offset", offset, "error", err)
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0, limit)
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.Username,
			&review.Rating,
			&review.Title,
			&review.Description,
			&review.Image,
			&review.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reviews: %w", err)
	}

	return reviews, nil
}

// Count returns the authoritative review total.
func (r *ReviewRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&count); err != nil {
		r.logger.Error("failed to count reviews", "error", err)
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return count, nil
}
