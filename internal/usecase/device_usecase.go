package usecase

import (
	"context"

	"flock/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	Token    string
	DeviceID string
	Platform string
}

// DeviceUsecase defines the interface for the delivery token registry
type DeviceUsecase interface {
	// RegisterToken stores the token for the user's device, replacing any previous one
	RegisterToken(ctx context.Context, userID uuid.UUID, info *DeviceInfo) (*entity.UserDevice, error)

	// GetUserDevices retrieves all registered devices for a user
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// RemoveDevice unregisters one of the user's devices
	RemoveDevice(ctx context.Context, userID uuid.UUID, deviceID string) error

	// TokensFor returns every push target owned by the given users
	TokensFor(ctx context.Context, userIDs []uuid.UUID) ([]entity.PushTarget, error)
}
