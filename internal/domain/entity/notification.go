// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType categorises a notification for display.
type NotificationType string

const (
	NotificationTypeMeeting  NotificationType = "meeting"
	NotificationTypeMessage  NotificationType = "message"
	NotificationTypeReminder NotificationType = "reminder"
	NotificationTypeUpdate   NotificationType = "update"
	NotificationTypeGeneral  NotificationType = "general"
)

// IsValid checks if the NotificationType is a known value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeMeeting, NotificationTypeMessage, NotificationTypeReminder,
		NotificationTypeUpdate, NotificationTypeGeneral:
		return true
	default:
		return false
	}
}

// Notification is one recipient's copy of a sent message. A send to N users
// produces N independent records, each with its own read state. Read only
// ever moves from false to true.
type Notification struct {
	ID          uuid.UUID        `json:"id"`           // The Global Unique Identifier (GUID) for the record.
	RecipientID uuid.UUID        `json:"recipient_id"` // The user this copy belongs to.
	Title       string           `json:"title"`        // Short headline shown in the push banner.
	Message     string           `json:"message"`      // Body text.
	Type        NotificationType `json:"type"`         // Display category.
	Read        bool             `json:"read"`         // Whether the recipient has opened it.
	Data        map[string]any   `json:"data"`         // Opaque payload forwarded to the client.
	CreatedAt   time.Time        `json:"created_at"`   // Timestamp of the fan-out write.
}

// NotificationContent is what an administrator sends; it is copied into
// every recipient's record and into the push payload.
type NotificationContent struct {
	Title   string
	Message string
	Type    NotificationType
	Data    map[string]any
}
