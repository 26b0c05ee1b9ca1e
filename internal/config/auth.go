package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// JWTConfig holds token signing configuration.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig reads JWT_SECRET (required) and JWT_EXPIRATION_HOURS
// (default 24) from the environment.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	hours := 24
	if hoursStr := os.Getenv("JWT_EXPIRATION_HOURS"); hoursStr != "" {
		parsed, err := strconv.Atoi(hoursStr)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %w", err)
		}
		hours = parsed
	}
	if hours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1, got %d", hours)
	}

	return &JWTConfig{Secret: secret, ExpirationHours: hours}, nil
}

// ClientCredentials holds the API client allowed to request tokens. The
// secret is stored bcrypt-hashed; the plaintext never lives in config.
type ClientCredentials struct {
	ClientID   string
	SecretHash string
	BcryptCost int
}

// NewClientCredentials reads API_CLIENT_ID and API_CLIENT_SECRET_HASH
// (both required for the token endpoint) plus BCRYPT_COST (default 12,
// used only when hashing new secrets via the CLI).
func NewClientCredentials() (*ClientCredentials, error) {
	clientID := os.Getenv("API_CLIENT_ID")
	secretHash := os.Getenv("API_CLIENT_SECRET_HASH")
	if clientID == "" || secretHash == "" {
		return nil, fmt.Errorf("API_CLIENT_ID and API_CLIENT_SECRET_HASH are required but not set")
	}

	cost := 12
	if costStr := os.Getenv("BCRYPT_COST"); costStr != "" {
		parsed, err := strconv.Atoi(costStr)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		cost = parsed
	}
	if cost < 10 || cost > 14 {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", cost)
	}

	return &ClientCredentials{ClientID: clientID, SecretHash: secretHash, BcryptCost: cost}, nil
}

// Verify checks a presented client id and secret against the stored hash.
func (c *ClientCredentials) Verify(clientID, secret string) bool {
	if clientID != c.ClientID {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(c.SecretHash), []byte(secret)) == nil
}

// HashSecret hashes a new client secret at the configured cost.
func (c *ClientCredentials) HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hash), nil
}
