package kratos

import (
	"fmt"

	"github.com/google/uuid"
	kratosclient "github.com/ory/kratos-client-go"

	"studio/app/domain"
)

// transformIdentity maps a Kratos identity to the domain shape. Traits
// follow the studio identity schema: email plus optional full_name, phone
// and avatar_url.
func transformIdentity(identity *kratosclient.Identity) (*domain.Identity, error) {
	if identity == nil {
		return nil, fmt.Errorf("kratos session has no identity")
	}

	id, err := uuid.Parse(identity.Id)
	if err != nil {
		return nil, fmt.Errorf("invalid identity id %q: %w", identity.Id, err)
	}

	out := &domain.Identity{ID: id}

	traits, ok := identity.Traits.(map[string]interface{})
	if !ok {
		return out, nil
	}

	out.Email = stringTrait(traits, "email")
	out.Traits = domain.IdentityTraits{
		FullName:  stringTrait(traits, "full_name"),
		Phone:     stringTrait(traits, "phone"),
		AvatarURL: stringTrait(traits, "avatar_url"),
	}

	return out, nil
}

func transformSession(session *kratosclient.Session, token string, identity *domain.Identity) *domain.Session {
	out := &domain.Session{
		Token:    token,
		Identity: *identity,
		Active:   true,
	}

	if session.Active != nil {
		out.Active = *session.Active
	}
	if session.ExpiresAt != nil {
		out.ExpiresAt = *session.ExpiresAt
	}

	return out
}

func stringTrait(traits map[string]interface{}, key string) string {
	if v, ok := traits[key].(string); ok {
		return v
	}
	return ""
}
