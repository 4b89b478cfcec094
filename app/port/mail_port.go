package port

//go:generate mockgen -source=mail_port.go -destination=../mocks/mock_mail_port.go -package=mocks

import (
	"context"

	"studio/app/domain"
)

// MailGateway relays contact-form messages through the hosted email sender.
type MailGateway interface {
	SendContact(ctx context.Context, message domain.ContactMessage) error
}
