// Package service declares the domain-facing interfaces implemented by the
// infra layer.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates admin session tokens.
type TokenService interface {
	// GenerateToken creates a signed session token carrying the given roles.
	GenerateToken(subject string, roles []string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*jwt.Token, error)

	// SessionDuration returns the configured session lifetime.
	SessionDuration() time.Duration
}
