package entity

import "github.com/google/uuid"

// RecipientScope selects how a RecipientTarget is expanded.
type RecipientScope string

const (
	RecipientScopeAll    RecipientScope = "all"
	RecipientScopeUsers  RecipientScope = "users"
	RecipientScopeGroups RecipientScope = "groups"
)

// RecipientTarget describes who a notification is for.
type RecipientTarget struct {
	Scope    RecipientScope
	UserIDs  []uuid.UUID
	GroupIDs []uuid.UUID
}

// AllUsers targets every known user.
func AllUsers() RecipientTarget {
	return RecipientTarget{Scope: RecipientScopeAll}
}

// Users targets an explicit list of users.
func Users(ids ...uuid.UUID) RecipientTarget {
	return RecipientTarget{Scope: RecipientScopeUsers, UserIDs: ids}
}

// Groups targets the members of the given groups.
func Groups(ids ...uuid.UUID) RecipientTarget {
	return RecipientTarget{Scope: RecipientScopeGroups, GroupIDs: ids}
}
