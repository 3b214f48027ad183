package service

import (
	"time"

	"flock/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenService defines the interface for generating and validating JWTs.
// Access tokens and reset credentials are signed with different secrets and
// carry different purposes, so neither validates as the other.
type TokenService interface {
	// GenerateAccessToken creates an access token for a given user.
	GenerateAccessToken(userID uuid.UUID, roles entity.Roles) (string, error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*entity.AccessClaims, error)

	// GenerateResetToken creates a password-reset credential bound to otpHash.
	GenerateResetToken(userID uuid.UUID, otpHash string) (token string, expiresAt time.Time, err error)

	// ValidateResetToken checks signature, expiry and purpose of a reset credential.
	ValidateResetToken(tokenString string) (*entity.ResetClaims, error)

	// ResetBinding derives the binding claim for otpHash.
	ResetBinding(otpHash string) string
}
