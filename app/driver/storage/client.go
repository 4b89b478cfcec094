package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"studio/app/config"
)

// Client talks to the hosted object store over its REST API. Avatar blobs
// are addressed by generated keys inside a single bucket.
type Client struct {
	baseURL    string
	apiKey     string
	bucket     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new object store client
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.StorageURL, "/"),
		apiKey:     cfg.StorageAPIKey,
		bucket:     cfg.StorageBucket,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger.With("component", "storage_client"),
	}
}

// Upload stores the blob under key and returns its public URL. Keys are
// never overwritten; the caller generates a unique one per upload.
func (c *Client) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	endpoint := fmt.Sprintf("%s/object/%s/%s", c.baseURL, c.bucket, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", "studio-backend/1.0")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("avatar upload request failed", "key", key, "error", err)
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Debug("failed to close upload response body", "error", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("avatar upload rejected",
			"key", key,
			"status", resp.StatusCode,
			"body", string(body))
		return "", fmt.Errorf("upload failed with status %d", resp.StatusCode)
	}

	c.logger.Info("avatar uploaded", "key", key, "size", len(data))
	return c.PublicURL(key), nil
}

// PublicURL returns the public address of a stored object.
func (c *Client) PublicURL(key string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", c.baseURL, c.bucket, key)
}
