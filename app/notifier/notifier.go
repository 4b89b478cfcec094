// Package notifier carries localized user feedback out of the operation
// layer. Operations receive it as an injected capability; nothing in the
// codebase reaches for a global dispatcher.
package notifier

import (
	"embed"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Toast is one notification ready for the UI tier.
type Toast struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Dismissible bool   `json:"dismissible"`
}

// Sink receives rendered toasts. The web tier registers one; tests inspect
// what was emitted through it.
type Sink func(Toast)

// Notifier localizes message IDs and emits toasts.
type Notifier struct {
	bundle *i18n.Bundle
	sink   Sink
	logger *slog.Logger
}

// New loads the embedded locale catalogs. A nil sink drops toasts after
// logging them.
func New(logger *slog.Logger, sink Sink) (*Notifier, error) {
	bundle := i18n.NewBundle(language.Spanish)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	for _, name := range []string{"locales/es.yaml", "locales/en.yaml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, name); err != nil {
			return nil, err
		}
	}

	return &Notifier{
		bundle: bundle,
		sink:   sink,
		logger: logger.With("component", "notifier"),
	}, nil
}

// Success emits a success toast for the given message ID.
func (n *Notifier) Success(locale, messageID string) {
	n.emit(locale, messageID, "success")
}

// Error emits an error toast. Unknown IDs pass through verbatim so raw
// provider error messages still reach the customer.
func (n *Notifier) Error(locale, messageID string) {
	n.emit(locale, messageID, "error")
}

func (n *Notifier) emit(locale, messageID, toastType string) {
	title := n.localize(locale, messageID)

	toast := Toast{
		Title:       title,
		Type:        toastType,
		Location:    "bottom-center",
		Dismissible: true,
	}

	n.logger.Info("notification emitted",
		"locale", locale,
		"type", toastType,
		"title", title)

	if n.sink != nil {
		n.sink(toast)
	}
}

func (n *Notifier) localize(locale, messageID string) string {
	localizer := i18n.NewLocalizer(n.bundle, locale)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		// Not a catalog ID: treat it as a literal message
		return messageID
	}
	return msg
}
