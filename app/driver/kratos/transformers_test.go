package kratos

import (
	"testing"
	"time"

	"github.com/google/uuid"
	kratosclient "github.com/ory/kratos-client-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformIdentity(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		identity *kratosclient.Identity
		wantErr  bool
		check    func(t *testing.T, out *identityCheck)
	}{
		{
			name: "full traits",
			identity: &kratosclient.Identity{
				Id: id.String(),
				Traits: map[string]interface{}{
					"email":      "maria@example.com",
					"full_name":  "María García",
					"phone":      "+34600000000",
					"avatar_url": "https://cdn.example.com/a.webp",
				},
			},
			check: func(t *testing.T, out *identityCheck) {
				assert.Equal(t, id, out.id)
				assert.Equal(t, "maria@example.com", out.email)
				assert.Equal(t, "María García", out.fullName)
			},
		},
		{
			name:     "untyped traits tolerated",
			identity: &kratosclient.Identity{Id: id.String(), Traits: "not-a-map"},
			check: func(t *testing.T, out *identityCheck) {
				assert.Equal(t, id, out.id)
				assert.Empty(t, out.email)
			},
		},
		{
			name:     "nil identity rejected",
			identity: nil,
			wantErr:  true,
		},
		{
			name:     "malformed id rejected",
			identity: &kratosclient.Identity{Id: "not-a-uuid"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := transformIdentity(tt.identity)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, out)
				return
			}
			require.NoError(t, err)
			tt.check(t, &identityCheck{id: out.ID, email: out.Email, fullName: out.Traits.FullName})
		})
	}
}

type identityCheck struct {
	id       uuid.UUID
	email    string
	fullName string
}

// The login result embeds the session by value while its identity is a
// pointer; the registration result embeds the identity by value. Both shapes
// must flow through transformIdentity unchanged.
func TestTransformIdentityResultShapes(t *testing.T) {
	id := uuid.New()

	login := kratosclient.SuccessfulNativeLogin{
		Session: kratosclient.Session{
			Identity: &kratosclient.Identity{Id: id.String()},
		},
	}
	out, err := transformIdentity(login.Session.Identity)
	require.NoError(t, err)
	assert.Equal(t, id, out.ID)

	registration := kratosclient.SuccessfulNativeRegistration{
		Identity: kratosclient.Identity{Id: id.String()},
	}
	out, err = transformIdentity(&registration.Identity)
	require.NoError(t, err)
	assert.Equal(t, id, out.ID)
}

func TestTransformSession(t *testing.T) {
	id := uuid.New()
	identity, err := transformIdentity(&kratosclient.Identity{Id: id.String()})
	require.NoError(t, err)

	expires := time.Now().Add(time.Hour)
	inactive := false

	out := transformSession(&kratosclient.Session{
		Active:    &inactive,
		ExpiresAt: &expires,
	}, "session-token", identity)

	assert.Equal(t, "session-token", out.Token)
	assert.Equal(t, id, out.Identity.ID)
	assert.False(t, out.Active)
	assert.Equal(t, expires, out.ExpiresAt)

	out = transformSession(&kratosclient.Session{}, "", identity)
	assert.True(t, out.Active, "missing active flag defaults to active")
	assert.Empty(t, out.Token)
}
