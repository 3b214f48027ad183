package usecase

import (
	"context"

	"flock/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SendNotificationInput addresses a notification to a single user.
type SendNotificationInput struct {
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	Title       string
	Message     string
	Type        entity.NotificationType
	Data        map[string]any
}

// SendBulkInput addresses a notification to a recipient target.
type SendBulkInput struct {
	SenderID uuid.UUID
	Target   entity.RecipientTarget
	Title    string
	Message  string
	Type     entity.NotificationType
	Data     map[string]any
}

// --- Output DTOs ---

// SendNotificationOutput returns the stored record for a single send.
type SendNotificationOutput struct {
	Notification *entity.Notification
	Dispatch     *entity.DispatchSummary
}

// SendBulkOutput reports how many records a bulk send created.
type SendBulkOutput struct {
	Count    int
	Dispatch *entity.DispatchSummary
}

// NotificationUsecase defines the interface for notification management use cases
type NotificationUsecase interface {
	// SendToUser stores one record for the recipient and pushes it to their devices
	SendToUser(ctx context.Context, input SendNotificationInput) (*SendNotificationOutput, error)

	// SendBulk stores one record per resolved recipient and pushes to all their devices
	SendBulk(ctx context.Context, input SendBulkInput) (*SendBulkOutput, error)

	// ListForUser returns the user's newest notifications first
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// GetForUser returns one of the user's notifications, marking it read
	GetForUser(ctx context.Context, userID, notificationID uuid.UUID) (*entity.Notification, error)

	// MarkRead marks one of the user's notifications read
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error

	// MarkAllRead marks every notification the user has at call time as read
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// UnreadCount returns how many of the user's notifications are unread
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}
