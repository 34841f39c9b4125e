package infra

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenSigner mints HS256 bearer tokens the way the identity service would,
// so the suite exercises the console's real authenticator.
type TokenSigner struct {
	secret []byte
}

// NewTokenSigner creates a signer around the shared HS256 secret.
func NewTokenSigner(secret []byte) *TokenSigner {
	return &TokenSigner{secret: secret}
}

// MintToken creates a signed JWT with the given subject and role claims.
func (t *TokenSigner) MintToken(employeeID, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  employeeID,
		"role": role,
		"exp":  jwt.NewNumericDate(time.Now().Add(ttl)),
		"iat":  jwt.NewNumericDate(time.Now()),
		"jti":  uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}
