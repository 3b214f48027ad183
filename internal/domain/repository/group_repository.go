package repository

import (
	"context"

	"flock/internal/domain/entity"

	"github.com/google/uuid"
)

// GroupRepository reads directory groups and their membership.
type GroupRepository interface {
	// FindByIDs returns the groups that exist among ids with members resolved
	// to user IDs. Unknown IDs are skipped, not reported.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Group, error)
}
