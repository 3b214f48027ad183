package service

import (
	"context"
)

// NotificationSentEvent announces a completed fan-out write to downstream
// consumers (analytics, digest mailers). Publishing is best effort.
type NotificationSentEvent struct {
	RequestID      string   `json:"request_id,omitempty"` // For distributed tracing
	SenderID       string   `json:"sender_id"`
	Title          string   `json:"title"`
	Type           string   `json:"type"`
	RecipientCount int      `json:"recipient_count"`
	RecipientIDs   []string `json:"recipient_ids"`
	Dispatch       any      `json:"dispatch,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationSent publishes a notification.sent event
	PublishNotificationSent(ctx context.Context, event *NotificationSentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
