package domain

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Review bounds shared by the client schema and the server-side re-check.
// The two layers must agree on these.
const (
	ReviewTitleMinLen = 5
	ReviewTitleMaxLen = 40
	ReviewRatingMin   = 1
	ReviewRatingMax   = 5
)

// PlaceholderAvatar is served for reviews without a usable avatar image.
const PlaceholderAvatar = "/statics/user.svg"

// ImageProxyPath is the route external avatar URLs are rewritten through.
const ImageProxyPath = "/api/proxy-image"

// Review is a customer review. Immutable once created: there is no edit or
// delete path.
type Review struct {
	ID          int64     `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Username    string    `json:"username"`
	Rating      int       `json:"rating"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewReview builds a review for an authenticated identity, applying the
// insert defaults: username snapshot from the identity and the placeholder
// image when none was supplied.
func NewReview(identity Identity, rating int, title, description, image string) (*Review, error) {
	if err := ValidateReviewInput(rating, title, description); err != nil {
		return nil, err
	}

	if image == "" {
		image = PlaceholderAvatar
	}

	return &Review{
		UserID:      identity.ID,
		Username:    identity.Username(),
		Rating:      rating,
		Title:       title,
		Description: description,
		Image:       image,
		CreatedAt:   time.Now(),
	}, nil
}

// ValidateReviewInput re-checks the submission invariants server-side,
// independently of the client schema.
func ValidateReviewInput(rating int, title, description string) error {
	if rating == 0 || title == "" || description == "" {
		return ErrMissingFields
	}
	if rating < ReviewRatingMin || rating > ReviewRatingMax {
		return ErrInvalidRating
	}
	// Character bounds, not bytes: accented titles count per character.
	if titleLen := utf8.RuneCountInString(title); titleLen < ReviewTitleMinLen || titleLen > ReviewTitleMaxLen {
		return ErrInvalidTitle
	}
	return nil
}

// ResolveAvatarURL maps a stored review image reference to what the page
// should render. Local paths and data URIs pass through unchanged; external
// URLs are rewritten through the image proxy; anything unparseable falls
// back to the placeholder.
func ResolveAvatarURL(image string) string {
	if image == "" {
		return PlaceholderAvatar
	}

	if strings.HasPrefix(image, "/") || strings.HasPrefix(image, "data:") {
		return image
	}

	u, err := url.Parse(image)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return PlaceholderAvatar
	}

	return ImageProxyPath + "?url=" + url.QueryEscape(image)
}
