package domain

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAdminSession(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
		want    *AdminSession
	}{
		{
			name: "valid cookie",
			raw:  (&AdminSession{Username: "marta", IssuedAt: 1700000000000}).Encode(),
			want: &AdminSession{Username: "marta", IssuedAt: 1700000000000},
		},
		{
			name:    "not base64",
			raw:     "%%%not-base64%%%",
			wantErr: true,
		},
		{
			name:    "base64 but not json",
			raw:     base64.StdEncoding.EncodeToString([]byte("hello")),
			wantErr: true,
		},
		{
			name:    "missing username",
			raw:     base64.StdEncoding.EncodeToString([]byte(`{"issuedAt": 1700000000000}`)),
			wantErr: true,
		},
		{
			name:    "missing issuedAt",
			raw:     base64.StdEncoding.EncodeToString([]byte(`{"username": "marta"}`)),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeAdminSession(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdminSessionIsExpired(t *testing.T) {
	ttl := 24 * time.Hour
	issued := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	session := &AdminSession{Username: "marta", IssuedAt: issued.UnixMilli()}

	assert.False(t, session.IsExpired(issued.Add(23*time.Hour), ttl))
	assert.True(t, session.IsExpired(issued.Add(24*time.Hour), ttl), "exactly at ttl counts as expired")
	assert.True(t, session.IsExpired(issued.Add(25*time.Hour), ttl))
}

func TestAdminGateAction(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		validAdmin bool
		want       GateAction
	}{
		{"valid admin on login page bounces to dashboard", "/auth", true, GateRedirectDashboard},
		{"anonymous on login page passes", "/auth", false, GatePass},
		{"anonymous on dashboard bounces to login", "/admin/dashboard", false, GateRedirectLogin},
		{"anonymous on dashboard subpage bounces to login", "/admin/dashboard/reviews", false, GateRedirectLogin},
		{"valid admin on dashboard passes", "/admin/dashboard", true, GatePass},
		{"public page passes regardless", "/api/db/get-reviews", false, GatePass},
		{"public page passes for admin too", "/", true, GatePass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AdminGateAction(tt.path, tt.validAdmin))
		})
	}
}

func TestAdminSessionEncodeRoundTrip(t *testing.T) {
	session := &AdminSession{Username: "lucía", IssuedAt: time.Now().UnixMilli()}

	decoded, err := DecodeAdminSession(session.Encode())
	require.NoError(t, err)
	assert.Equal(t, session, decoded)
}
