// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"flock/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrResetStateChanged is returned when a conditional password reset matched no row
	// because the pending OTP was already consumed or replaced.
	ErrResetStateChanged = errors.New("password reset state changed")
)

// UserRepository defines the operations on directory members the notification core needs.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address (case-insensitive).
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAllIDs returns the ID of every user.
	FindAllIDs(ctx context.Context) ([]uuid.UUID, error)

	// UpdateResetState overwrites the user's password-reset state.
	UpdateResetState(ctx context.Context, userID uuid.UUID, state entity.ResetAttemptState) error

	// ResetPassword sets a new password hash and clears the reset state, but only
	// while the stored OTP hash still equals expectedOTPHash. Returns
	// ErrResetStateChanged when nothing matched.
	ResetPassword(ctx context.Context, userID uuid.UUID, passwordHash, expectedOTPHash string) error
}
