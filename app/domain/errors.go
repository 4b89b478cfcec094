package domain

import "errors"

var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")

	// Persistence errors
	ErrProfileNotFound = errors.New("profile not found")
	ErrAdminNotFound   = errors.New("admin not found")
	ErrStoreFailure    = errors.New("store failure")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrInvalidTitle    = errors.New("title must be between 5 and 40 characters")
	ErrMissingFields   = errors.New("rating, title, and description are required")
	ErrFileTooLarge    = errors.New("file size must be less than 5MB")
	ErrInvalidFileType = errors.New("invalid file type, only JPEG, PNG, and WebP are allowed")

	// Image proxy errors
	ErrNotAnImage      = errors.New("not an image")
	ErrUpstreamTimeout = errors.New("request timeout")
	ErrInvalidImageURL = errors.New("invalid image URL")
)

// FieldError is a single field-level validation failure. Path addresses the
// offending field the way the client form names it.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationErrors aggregates field failures for one payload.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msg := "validation failed: " + e[0].Path + ": " + e[0].Message
	if len(e) > 1 {
		msg += " (and more)"
	}
	return msg
}

// ByPath returns the message recorded for a field path, if any.
func (e ValidationErrors) ByPath(path string) (string, bool) {
	for _, fe := range e {
		if fe.Path == path {
			return fe.Message, true
		}
	}
	return "", false
}
