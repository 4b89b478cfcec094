package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"studio/app/domain"
	"studio/app/port"
	"studio/app/rest/middleware"
)

// ProfileHandler serves the profile persistence endpoints. These are the
// REST halves of the dual-write paths: browsers and the sign-up
// orchestration both land here when the direct path is unavailable.
type ProfileHandler struct {
	profileRepo port.ProfileRepository
	storage     port.StorageGateway
	logger      *slog.Logger
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileRepo port.ProfileRepository, storage port.StorageGateway, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileRepo: profileRepo,
		storage:     storage,
		logger:      logger,
	}
}

type saveProfileRequest struct {
	FullName  string  `json:"fullName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatarUrl"`
}

type uploadAvatarResponse struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// SaveProfile upserts the caller's profile row.
func (h *ProfileHandler) SaveProfile(c echo.Context) error {
	ctx := c.Request().Context()

	session := middleware.SessionFrom(c)
	if session == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	var req saveProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if req.FullName == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Full name and email are required"})
	}

	profile, err := domain.NewProfile(session.Identity.ID, req.FullName, req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	profile.Phone = req.Phone
	profile.AvatarURL = req.AvatarURL

	if err := h.profileRepo.Upsert(ctx, profile); err != nil {
		h.logger.Error("profile upsert failed", "auth_id", session.Identity.ID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to save profile"})
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "profile saved"})
}

// UploadAvatar stores an avatar blob and returns its public URL.
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	ctx := c.Request().Context()

	session := middleware.SessionFrom(c)
	if session == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "avatar file is required"})
	}

	if fileHeader.Size > domain.AvatarMaxSize {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Avatar must be smaller than 5MB"})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !domain.IsAllowedAvatarType(contentType) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Avatar must be a JPG, PNG or WebP image"})
	}

	avatar, err := readAvatar(fileHeader)
	if err != nil {
		h.logger.Error("avatar read failed", "error", err)
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "could not read avatar file"})
	}

	key := fmt.Sprintf("%s-%d%s", session.Identity.ID, time.Now().UnixMilli(), extensionFor(avatar))
	url, err := h.storage.Upload(ctx, key, avatar.ContentType, avatar.Data)
	if err != nil {
		h.logger.Error("avatar upload failed", "auth_id", session.Identity.ID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to upload avatar"})
	}

	return c.JSON(http.StatusOK, uploadAvatarResponse{URL: url, Path: key})
}

func extensionFor(avatar *domain.AvatarUpload) string {
	switch avatar.ContentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
