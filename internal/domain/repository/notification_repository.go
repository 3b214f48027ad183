// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"flock/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found
// or is owned by another user.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// BatchCreate persists the records in chunks without a surrounding
	// transaction; an interrupted call may leave some records written.
	BatchCreate(ctx context.Context, notifications []*entity.Notification) error

	// FindByIDForRecipient retrieves a record owned by recipientID.
	FindByIDForRecipient(ctx context.Context, id, recipientID uuid.UUID) (*entity.Notification, error)

	// FindByRecipient returns the recipient's newest records first, at most limit.
	FindByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]*entity.Notification, error)

	// MarkRead flags one owned record as read. Already-read records are not an error.
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) error

	// MarkAllReadBefore flags every unread record created at or before snapshot.
	MarkAllReadBefore(ctx context.Context, recipientID uuid.UUID, snapshot time.Time) (int64, error)

	// CountUnread returns the number of unread records for the recipient.
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)
}
