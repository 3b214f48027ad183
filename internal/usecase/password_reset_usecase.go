package usecase

import (
	"context"
	"time"
)

// VerifyOTPOutput carries the short-lived credential that authorizes a password change.
type VerifyOTPOutput struct {
	ResetToken string
	ExpiresAt  time.Time
}

// PasswordResetUsecase defines the forgot-password flow.
type PasswordResetUsecase interface {
	// RequestReset e-mails a one-time code. Unknown addresses succeed silently.
	RequestReset(ctx context.Context, email string) error

	// VerifyOTP exchanges a valid code for a reset credential.
	VerifyOTP(ctx context.Context, email, otp string) (*VerifyOTPOutput, error)

	// ResetPassword sets a new password using a reset credential. Each
	// credential works at most once.
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}
