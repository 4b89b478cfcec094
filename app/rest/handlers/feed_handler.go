package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"studio/app/domain"
	"studio/app/rest/middleware"
	"studio/app/usecase"
)

// FeedHandler exposes the shared review feed the public reviews page renders
// from. The feed keeps the accumulated pages server-side so every visitor
// sees the same state without each request re-reading the whole listing.
type FeedHandler struct {
	feed          *usecase.ReviewFeed
	defaultLocale string
	logger        *slog.Logger
}

// NewFeedHandler creates a new feed handler.
func NewFeedHandler(feed *usecase.ReviewFeed, defaultLocale string, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{
		feed:          feed,
		defaultLocale: defaultLocale,
		logger:        logger,
	}
}

// GetFeed returns the current feed snapshot, loading the first page on the
// first visit.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	ctx := c.Request().Context()

	snapshot := h.feed.Snapshot()
	if len(snapshot.Reviews) == 0 && !snapshot.Loading {
		if err := h.feed.Load(ctx); err != nil {
			h.logger.Error("feed load failed", "error", err)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch reviews"})
		}
		snapshot = h.feed.Snapshot()
	}

	return c.JSON(http.StatusOK, snapshot)
}

// LoadMore advances the feed by one page and returns the new snapshot. A
// request that races another fetch comes back unchanged.
func (h *FeedHandler) LoadMore(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.feed.LoadMore(ctx); err != nil {
		h.logger.Error("feed load-more failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch reviews"})
	}

	return c.JSON(http.StatusOK, h.feed.Snapshot())
}

// SubmitReview submits through the feed so the listing refreshes once the
// review lands.
func (h *FeedHandler) SubmitReview(c echo.Context) error {
	ctx := c.Request().Context()
	locale := localeFrom(c, h.defaultLocale)

	var identity *domain.Identity
	if session := middleware.SessionFrom(c); session != nil {
		identity = &session.Identity
	}

	var input domain.ReviewInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if err := h.feed.Submit(ctx, locale, identity, input); err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error: "Unauthorized. Please sign in to submit a review.",
			})
		case errors.Is(err, domain.ErrMissingFields):
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "Rating, title, and description are required.",
			})
		case errors.Is(err, domain.ErrInvalidRating):
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "Rating must be between 1 and 5.",
			})
		case errors.Is(err, domain.ErrInvalidTitle):
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "Title must be between 5 and 40 characters.",
			})
		default:
			h.logger.Error("feed submission failed", "error", err)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to save review"})
		}
	}

	return c.JSON(http.StatusCreated, h.feed.Snapshot())
}
