package usecase

import (
	"context"

	"flock/internal/domain/entity"
)

// PushDispatcher hands notification content to the push provider.
type PushDispatcher interface {
	// Dispatch sends content to every target in provider-sized batches.
	// Delivery problems are logged and counted in the summary; they are never
	// returned to the caller.
	Dispatch(ctx context.Context, targets []entity.PushTarget, content entity.NotificationContent) *entity.DispatchSummary
}
