// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"flock/internal/domain/entity"

	"github.com/google/uuid"
)

// RecipientResolver expands a recipient target into concrete user IDs.
type RecipientResolver interface {
	// Resolve returns the deduplicated user IDs the target refers to. An empty
	// result is valid; unknown group IDs contribute no members.
	Resolve(ctx context.Context, target entity.RecipientTarget) ([]uuid.UUID, error)
}
