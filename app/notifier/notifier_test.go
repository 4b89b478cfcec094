package notifier

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotifier(t *testing.T) (*Notifier, *[]Toast) {
	t.Helper()

	var emitted []Toast
	n, err := New(slog.Default(), func(toast Toast) {
		emitted = append(emitted, toast)
	})
	require.NoError(t, err)
	return n, &emitted
}

func TestNotifierLocalization(t *testing.T) {
	n, emitted := newTestNotifier(t)

	n.Success("en", "SIGNIN_SUCCESS")
	n.Success("es", "SIGNIN_SUCCESS")

	require.Len(t, *emitted, 2)
	assert.Equal(t, "Signed in successfully!", (*emitted)[0].Title)
	assert.Equal(t, "¡Sesión iniciada correctamente!", (*emitted)[1].Title)
}

func TestNotifierFallsBackToDefaultLocale(t *testing.T) {
	n, emitted := newTestNotifier(t)

	n.Error("fr", "REVIEW_ERROR")

	require.Len(t, *emitted, 1)
	assert.Equal(t, "Error al enviar la reseña", (*emitted)[0].Title)
}

// Raw provider error strings are not catalog IDs; they must reach the
// customer verbatim.
func TestNotifierUnknownIDPassesThrough(t *testing.T) {
	n, emitted := newTestNotifier(t)

	n.Error("en", "connection refused by upstream")

	require.Len(t, *emitted, 1)
	assert.Equal(t, "connection refused by upstream", (*emitted)[0].Title)
}

func TestNotifierToastShape(t *testing.T) {
	n, emitted := newTestNotifier(t)

	n.Success("en", "REVIEW_INSERTED")
	n.Error("en", "REVIEW_ERROR")

	require.Len(t, *emitted, 2)

	success := (*emitted)[0]
	assert.Equal(t, "success", success.Type)
	assert.Equal(t, "bottom-center", success.Location)
	assert.True(t, success.Dismissible)

	failure := (*emitted)[1]
	assert.Equal(t, "error", failure.Type)
}

func TestNotifierNilSink(t *testing.T) {
	n, err := New(slog.Default(), nil)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		n.Success("en", "SIGNIN_SUCCESS")
	})
}
