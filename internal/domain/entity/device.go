// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice is one installed app instance that can receive pushes.
// There is at most one row per (UserID, DeviceID); registering again
// replaces the token for that device.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the device row.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the user who owns this device.
	DeviceID  string    `json:"device_id"`  // Unique device identifier from the client.
	PushToken string    `json:"push_token"` // Provider-issued push token.
	Platform  string    `json:"platform"`   // Device platform (ios, android), optional.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this device was first registered.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last token replacement.
}

// PushTarget is a token resolved for fan-out together with its owner,
// so dispatch results can be attributed per recipient.
type PushTarget struct {
	UserID   uuid.UUID
	DeviceID string
	Token    string
}

// ToPushTarget flattens a device row into a dispatch target.
func (d *UserDevice) ToPushTarget() PushTarget {
	return PushTarget{UserID: d.UserID, DeviceID: d.DeviceID, Token: d.PushToken}
}
