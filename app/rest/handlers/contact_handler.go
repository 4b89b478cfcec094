package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"studio/app/domain"
	"studio/app/usecase"
)

// ContactHandler relays contact-form submissions.
type ContactHandler struct {
	contactUsecase *usecase.ContactUsecase
	defaultLocale  string
	logger         *slog.Logger
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactUsecase *usecase.ContactUsecase, defaultLocale string, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
		defaultLocale:  defaultLocale,
		logger:         logger,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SendContact validates and relays the message to the studio inbox.
func (h *ContactHandler) SendContact(c echo.Context) error {
	ctx := c.Request().Context()

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	locale := localeFrom(c, h.defaultLocale)

	message := domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := message.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	if err := h.contactUsecase.Send(ctx, locale, message); err != nil {
		h.logger.Error("contact relay failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to send message"})
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "message sent"})
}
