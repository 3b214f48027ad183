// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a member of the church directory. Contacts, groups and events
// reference users; the notification core only needs identity, credentials
// and the password-reset state.
type User struct {
	ID           uuid.UUID         // The Global Unique Identifier (GUID) for the user.
	Email        string            // Login identifier and destination of reset codes.
	Name         string            // The user's display name.
	Roles        Roles             // Roles granted to the user.
	PasswordHash string            // bcrypt hash of the user's password.
	ResetState   ResetAttemptState // Forgot-password throttle and pending OTP.
	CreatedAt    time.Time         // Timestamp of when this user account was created.
	UpdatedAt    time.Time         // Timestamp of the last modification to this user's data.
}

// IsAdmin reports whether the user may send notifications to others.
func (u *User) IsAdmin() bool {
	return u.Roles.Contains(RoleAdmin)
}
