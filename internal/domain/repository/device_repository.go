// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"flock/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// UpsertDevice stores the token for (UserID, DeviceID) in one statement,
	// replacing any previous token for that slot. ID and timestamps on the
	// argument are filled from the stored row.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDevicesByUser retrieves all devices for a specific user.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindDevicesByUsers retrieves all devices belonging to any of userIDs.
	FindDevicesByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error)

	// DeleteDevice removes the user's device by its client device ID.
	DeleteDevice(ctx context.Context, userID uuid.UUID, deviceID string) error

	// DeleteByTokens removes every device holding one of tokens and returns the count removed.
	DeleteByTokens(ctx context.Context, tokens []string) (int64, error)
}
