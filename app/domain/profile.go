package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile is the customer profile row, upserted at most once per identity
// and keyed on the auth provider's identity id.
type Profile struct {
	AuthID    uuid.UUID `json:"auth_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProfile creates a profile with validation.
func NewProfile(authID uuid.UUID, fullName, email string) (*Profile, error) {
	if authID == (uuid.UUID{}) {
		return nil, fmt.Errorf("auth ID is required")
	}
	if fullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	now := time.Now()
	return &Profile{
		AuthID:    authID,
		FullName:  fullName,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ProfileFromIdentity derives the lazy profile created on first sign-in when
// no row exists yet: trait metadata when present, otherwise the email
// local-part as the name.
func ProfileFromIdentity(identity Identity) (*Profile, error) {
	name := identity.Traits.FullName
	if name == "" {
		if at := strings.Index(identity.Email, "@"); at > 0 {
			name = identity.Email[:at]
		} else {
			name = "User"
		}
	}

	profile, err := NewProfile(identity.ID, name, identity.Email)
	if err != nil {
		return nil, err
	}
	if identity.Traits.Phone != "" {
		phone := identity.Traits.Phone
		profile.Phone = &phone
	}
	return profile, nil
}

// Reconcile folds provider metadata into an existing profile. Only fields
// where the metadata is non-empty and differs from the stored value are
// touched; empty metadata never clears a present value. Returns true when
// the profile changed.
func (p *Profile) Reconcile(traits IdentityTraits) bool {
	changed := false

	if traits.FullName != "" && p.FullName != traits.FullName {
		p.FullName = traits.FullName
		changed = true
	}

	if traits.Phone != "" && (p.Phone == nil || *p.Phone != traits.Phone) {
		phone := traits.Phone
		p.Phone = &phone
		changed = true
	}

	if changed {
		p.UpdatedAt = time.Now()
	}
	return changed
}
