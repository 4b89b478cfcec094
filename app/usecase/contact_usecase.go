package usecase

import (
	"context"
	"log/slog"
	"sync"

	"studio/app/domain"
	"studio/app/port"
)

// ContactUsecase relays contact-form submissions to the studio inbox.
// Submissions are serialized: while one is in flight further ones are
// dropped silently, mirroring the disabled send button.
type ContactUsecase struct {
	mailer   port.MailGateway
	notifier port.Notifier
	logger   *slog.Logger

	mu      sync.Mutex
	sending bool
}

// NewContactUsecase creates a contact usecase.
func NewContactUsecase(mailer port.MailGateway, notifier port.Notifier, logger *slog.Logger) *ContactUsecase {
	return &ContactUsecase{
		mailer:   mailer,
		notifier: notifier,
		logger:   logger.With("component", "contact_usecase"),
	}
}

// Send validates and relays the message.
func (u *ContactUsecase) Send(ctx context.Context, locale string, message domain.ContactMessage) error {
	if err := message.Validate(); err != nil {
		return err
	}

	u.mu.Lock()
	if u.sending {
		u.mu.Unlock()
		return nil
	}
	u.sending = true
	u.mu.Unlock()

	err := u.mailer.SendContact(ctx, message)

	u.mu.Lock()
	u.sending = false
	u.mu.Unlock()

	if err != nil {
		u.logger.Error("contact relay failed", "error", err)
		u.notifier.Error(locale, "CONTACT_ERROR")
		return err
	}

	u.notifier.Success(locale, "CONTACT_SENT")
	return nil
}
