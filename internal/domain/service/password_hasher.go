// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// Reset codes are hashed with the same salted algorithm as passwords.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext secret.
	Hash(password string) (string, error)

	// Check compares a plaintext secret with a hash to see if they match.
	Check(password, hash string) bool

	// ValidatePasswordStrength checks a new password against the configured policy.
	ValidatePasswordStrength(password string) error
}
