package entity

import "github.com/google/uuid"

// Group is a named set of directory members (a ministry, a small group, a choir).
type Group struct {
	ID        uuid.UUID
	Name      string
	MemberIDs []uuid.UUID
}

// GroupMember is a membership row as loaded from storage: either a bare
// reference or a row with the user preloaded. Resolve collapses both to an ID.
type GroupMember struct {
	UserID uuid.UUID
	User   *User
}

// Resolve returns the member's user ID regardless of how it was loaded.
func (m GroupMember) Resolve() uuid.UUID {
	if m.User != nil {
		return m.User.ID
	}

	return m.UserID
}
