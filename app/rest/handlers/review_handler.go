package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"studio/app/domain"
	"studio/app/port"
	"studio/app/rest/middleware"
)

// ReviewHandler serves the review feed endpoints.
type ReviewHandler struct {
	reviewUsecase port.ReviewUsecase
	logger        *slog.Logger
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviewUsecase port.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewUsecase: reviewUsecase,
		logger:        logger,
	}
}

type getReviewsRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// GetReviews returns one page of reviews plus the total count.
func (h *ReviewHandler) GetReviews(c echo.Context) error {
	ctx := c.Request().Context()

	var req getReviewsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	page, err := h.reviewUsecase.GetPage(ctx, req.Limit, req.Offset)
	if err != nil {
		h.logger.Error("review page fetch failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch reviews"})
	}

	return c.JSON(http.StatusOK, page)
}

// InsertReview stores a review for the authenticated customer.
func (h *ReviewHandler) InsertReview(c echo.Context) error {
	ctx := c.Request().Context()

	session := middleware.SessionFrom(c)
	if session == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "Unauthorized. Please sign in to submit a review.",
		})
	}

	var input domain.ReviewInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if err := h.reviewUsecase.Submit(ctx, session.Identity, input); err != nil {
		switch {
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
			h.logger.Error("review insert failed", "user_id", session.Identity.ID, "error", err)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to save review"})
		}
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "review saved"})
}
