package port

//go:generate mockgen -source=notifier_port.go -destination=../mocks/mock_notifier_port.go -package=mocks

// Notifier is the injected user-feedback capability. Operations report
// outcomes through it instead of reaching for any ambient dispatcher.
// The argument is a message ID resolved against the locale's catalog;
// unknown IDs are surfaced verbatim so raw provider errors still reach the
// customer.
type Notifier interface {
	Success(locale, messageID string)
	Error(locale, messageID string)
}
