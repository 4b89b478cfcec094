package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"studio/app/domain"
)

// Client replays profile and avatar writes through the public /api/db
// endpoints. The sign-up orchestrator uses it as the fallback strategy when
// a direct database or object-store write fails.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new REST fallback client
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger.With("component", "restapi_client"),
	}
}

type saveProfileRequest struct {
	FullName  string  `json:"fullName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

type uploadAvatarResponse struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

type apiError struct {
	Error string `json:"error"`
}

// SaveProfile posts the profile to /api/db/save-user-profile with the
// bearer token.
func (c *Client) SaveProfile(ctx context.Context, token string, profile *domain.Profile) error {
	payload, err := json.Marshal(saveProfileRequest{
		FullName:  profile.FullName,
		Email:     profile.Email,
		Phone:     profile.Phone,
		AvatarURL: profile.AvatarURL,
	})
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/db/save-user-profile", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("save profile request failed: %w", err)
	}
	defer c.closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return c.responseError("save profile", resp)
	}

	return nil
}

// UploadAvatar posts the file as multipart form data to
// /api/db/upload-avatar and returns the stored public URL.
func (c *Client) UploadAvatar(ctx context.Context, token string, avatar *domain.AvatarUpload) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("avatar", avatar.Filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(avatar.Data); err != nil {
		return "", fmt.Errorf("failed to write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/db/upload-avatar", &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload avatar request failed: %w", err)
	}
	defer c.closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return "", c.responseError("upload avatar", resp)
	}

	var result uploadAvatarResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}

	return result.URL, nil
}

func (c *Client) responseError(op string, resp *http.Response) error {
	var apiErr apiError
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return fmt.Errorf("%s failed with status %d: %s", op, resp.StatusCode, apiErr.Error)
	}
	return fmt.Errorf("%s failed with status %d", op, resp.StatusCode)
}

func (c *Client) closeBody(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.Debug("failed to close response body", "error", err)
	}
}
