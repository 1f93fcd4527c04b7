package identity

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity_WithRemoteIP(t *testing.T) {
	id := &Identity{UserID: "user-1"}

	ip := net.ParseIP("192.168.1.100")
	id.WithRemoteIP(ip)

	assert.Equal(t, ip, id.RemoteIP)
}

func TestContextGetSet(t *testing.T) {
	ctx := context.Background()

	// Initially no identity
	id, ok := Get(ctx)
	assert.False(t, ok)
	assert.Nil(t, id)

	expected := &Identity{
		UserID:    "user-1",
		IssuedAt:  time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
		ExpiresAt: time.Date(2026, 2, 1, 17, 0, 0, 0, time.UTC),
	}
	ctx = Set(ctx, expected)

	id, ok = Get(ctx)
	assert.True(t, ok)
	require.NotNil(t, id)
	assert.Equal(t, expected.UserID, id.UserID)
	assert.Equal(t, expected.IssuedAt, id.IssuedAt)
	assert.Equal(t, expected.ExpiresAt, id.ExpiresAt)
}

func TestGetWrongType(t *testing.T) {
	// A value under the same key that is not an *Identity is ignored
	ctx := context.WithValue(context.Background(), Key, "not an identity")

	id, ok := Get(ctx)
	assert.False(t, ok)
	assert.Nil(t, id)
}
