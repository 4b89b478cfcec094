package handlers

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"studio/app/domain"
	"studio/app/port"
	"studio/app/rest/middleware"
	"studio/app/utils/validator"
)

// AuthHandler handles customer authentication requests.
type AuthHandler struct {
	authUsecase   port.AuthUsecase
	validator     *validator.Validator
	defaultLocale string
	logger        *slog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authUsecase port.AuthUsecase, v *validator.Validator, defaultLocale string, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase:   authUsecase,
		validator:     v,
		defaultLocale: defaultLocale,
		logger:        logger,
	}
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	Token    string          `json:"token"`
	Identity domain.Identity `json:"identity"`
}

type signUpResponse struct {
	Status       string  `json:"status"`
	ProfileSaved bool    `json:"profileSaved"`
	AvatarURL    *string `json:"avatarUrl,omitempty"`
}

// SignUp handles the registration form. The body is multipart so the avatar
// file rides along with the text fields.
func (h *AuthHandler) SignUp(c echo.Context) error {
	ctx := c.Request().Context()
	locale := h.locale(c)

	payload := validator.SignUpPayload{
		FullName:        c.FormValue("fullName"),
		Email:           c.FormValue("email"),
		Phone:           c.FormValue("phone"),
		Password:        c.FormValue("password"),
		ConfirmPassword: c.FormValue("confirmPassword"),
	}

	if fileHeader, err := c.FormFile("avatar"); err == nil {
		avatar, readErr := readAvatar(fileHeader)
		if readErr != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: readErr.Error()})
		}
		payload.Avatar = avatar
	}

	if fieldErrs := h.validator.ValidateSignUp(payload); len(fieldErrs) > 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  "validation failed",
			Fields: fieldErrorViews(fieldErrs),
		})
	}

	outcome, err := h.authUsecase.SignUp(ctx, locale, domain.SignUpInput{
		FullName: payload.FullName,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Password: payload.Password,
		Avatar:   payload.Avatar,
	})
	if err != nil {
		h.logger.Error("sign-up failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "registration failed"})
	}

	return c.JSON(http.StatusCreated, signUpResponse{
		Status:       signUpStatusLabel(outcome.Status),
		ProfileSaved: outcome.ProfileSaved,
		AvatarURL:    outcome.AvatarURL,
	})
}

// SignIn handles the login form.
func (h *AuthHandler) SignIn(c echo.Context) error {
	ctx := c.Request().Context()
	locale := h.locale(c)

	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	payload := validator.SignInPayload{Email: req.Email, Password: req.Password}
	if fieldErrs := h.validator.ValidateSignIn(payload); len(fieldErrs) > 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  "validation failed",
			Fields: fieldErrorViews(fieldErrs),
		})
	}

	session, err := h.authUsecase.SignIn(ctx, locale, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid email or password"})
		}
		h.logger.Error("sign-in failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "sign-in failed"})
	}

	return c.JSON(http.StatusOK, signInResponse{
		Token:    session.Token,
		Identity: session.Identity,
	})
}

// Session echoes the bearer session back, letting the frontend restore its
// cached auth state on page load instead of treating a reload as signed out.
func (h *AuthHandler) Session(c echo.Context) error {
	session := middleware.SessionFrom(c)
	if session == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	return c.JSON(http.StatusOK, signInResponse{
		Token:    session.Token,
		Identity: session.Identity,
	})
}

// SignOut revokes the bearer session.
func (h *AuthHandler) SignOut(c echo.Context) error {
	ctx := c.Request().Context()
	locale := h.locale(c)

	token := bearerToken(c)
	if token == "" {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	if err := h.authUsecase.SignOut(ctx, locale, token); err != nil {
		h.logger.Error("sign-out failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "sign-out failed"})
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "signed out"})
}

func (h *AuthHandler) locale(c echo.Context) string {
	return localeFrom(c, h.defaultLocale)
}

func signUpStatusLabel(status domain.SignUpStatus) string {
	switch status {
	case domain.SignUpSuccess:
		return "success"
	case domain.SignUpPendingConfirmation:
		return "pending_confirmation"
	case domain.SignUpPartialFailure:
		return "partial_failure"
	default:
		return "unknown"
	}
}

func fieldErrorViews(errs domain.ValidationErrors) []FieldErrorView {
	views := make([]FieldErrorView, 0, len(errs))
	for _, fe := range errs {
		views = append(views, FieldErrorView{Path: fe.Path, Message: fe.Message})
	}
	return views
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func readAvatar(fileHeader *multipart.FileHeader) (*domain.AvatarUpload, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, domain.AvatarMaxSize+1))
	if err != nil {
		return nil, err
	}

	return &domain.AvatarUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
