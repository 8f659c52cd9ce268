// Package jwtmw provides JWT issuing and the gin middleware guarding administrator routes.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySecret is returned when a token is requested without a signing secret.
var ErrEmptySecret = errors.New("jwt secret is empty")

// Generator signs HS256 tokens for administrators.
type Generator struct {
	secret     []byte
	expiration time.Duration
}

// NewGenerator creates a new JWT generator with the provided secret and expiration duration.
func NewGenerator(secret string, expiration time.Duration) *Generator {
	return &Generator{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken creates a signed JWT token with standard claims.
func (g *Generator) GenerateToken(adminID uint, email string) (string, error) {
	if len(g.secret) == 0 {
		return "", ErrEmptySecret
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   adminID,
		"exp":   now.Add(g.expiration).Unix(),
		"iat":   now.Unix(),
		"email": email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
