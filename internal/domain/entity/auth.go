package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetPurpose is the only purpose a reset credential is valid for.
const PasswordResetPurpose = "password-reset"

// AccessClaims are the verified contents of an access token.
type AccessClaims struct {
	UserID uuid.UUID
	Roles  Roles
}

// ResetClaims are the verified contents of a password-reset credential.
// Binding ties the credential to the OTP hash that was verified, so a
// credential stops working once that OTP state is cleared or replaced.
type ResetClaims struct {
	UserID    uuid.UUID
	Binding   string
	ExpiresAt time.Time
}
