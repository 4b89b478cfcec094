package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"studio/app/config"
	"studio/app/domain"
	"studio/app/port"
)

// Client relays contact-form messages through the hosted email sender's
// REST API.
type Client struct {
	baseURL    string
	apiKey     string
	target     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new mailer client
func NewClient(cfg *config.Config, logger *slog.Logger) port.MailGateway {
	return &Client{
		baseURL:    strings.TrimRight(cfg.MailerURL, "/"),
		apiKey:     cfg.MailerAPIKey,
		target:     cfg.ContactTarget,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger.With("component", "mailer_client"),
	}
}

type sendRequest struct {
	To       string `json:"to"`
	ReplyTo  string `json:"reply_to"`
	FromName string `json:"from_name"`
	Subject  string `json:"subject"`
	Text     string `json:"text"`
}

// SendContact relays one contact-form message to the studio inbox.
func (c *Client) SendContact(ctx context.Context, message domain.ContactMessage) error {
	if c.baseURL == "" {
		return fmt.Errorf("mailer is not configured")
	}

	payload, err := json.Marshal(sendRequest{
		To:       c.target,
		ReplyTo:  message.Email,
		FromName: message.Name,
		Subject:  "Contact form message from " + message.Name,
		Text:     message.Message,
	})
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/send", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("contact relay request failed", "error", err)
		return fmt.Errorf("contact relay failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Debug("failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("contact relay rejected", "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("contact relay failed with status %d", resp.StatusCode)
	}

	c.logger.Info("contact message relayed", "reply_to", message.Email)
	return nil
}
