package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/decision-engine/internal/config"
)

func newTestJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.GenerateToken("client-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	clientID, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "client-1", clientID)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	token, err := newTestJWTService().GenerateToken("client-1")
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "different-secret", ExpirationHours: 1})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_EmptyToken(t *testing.T) {
	_, err := newTestJWTService().ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_GarbageToken(t *testing.T) {
	_, err := newTestJWTService().ValidateToken("not.a.token")
	assert.Error(t, err)
}
