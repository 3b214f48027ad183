package service

import (
	"context"

	"flock/internal/domain/entity"
)

// Push payload defaults applied to every message.
const (
	PushSoundDefault = "default"
	PushPriorityHigh = "high"
	PushBadge        = 1
)

// PushMessage is one push addressed to one token.
type PushMessage struct {
	To       string         `json:"to"`
	Title    string         `json:"title"`
	Body     string         `json:"body"`
	Data     map[string]any `json:"data,omitempty"`
	Sound    string         `json:"sound"`
	Priority string         `json:"priority"`
	Badge    int            `json:"badge"`
}

// PushProvider is a push delivery backend with a fixed per-request limit.
type PushProvider interface {
	// Name identifies the provider in logs.
	Name() string

	// MaxBatchSize is the most messages Send accepts in one call.
	MaxBatchSize() int

	// IsValidToken reports whether token has the provider's token format.
	IsValidToken(token string) bool

	// Send delivers one batch and returns exactly one ticket per message, in
	// order. An error means the whole call failed and no ticket is meaningful.
	Send(ctx context.Context, messages []PushMessage) ([]entity.DispatchTicket, error)
}
