package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "flock/internal/delivery/context"
	"flock/internal/domain/entity"
	domainerrors "flock/internal/domain/errors"
	"flock/internal/domain/repository"
	"flock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RegisterToken stores the token for (user, device). Registering the same
// device again replaces its token; the upsert is a single statement so
// concurrent registrations for one device cannot create duplicate rows.
func (s *deviceService) RegisterToken(ctx context.Context, userID uuid.UUID, info *usecase.DeviceInfo) (*entity.UserDevice, error) {
	if info == nil || strings.TrimSpace(info.Token) == "" || strings.TrimSpace(info.DeviceID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("token and deviceId are required")
	}

	device := &entity.UserDevice{
		UserID:    userID,
		DeviceID:  strings.TrimSpace(info.DeviceID),
		PushToken: strings.TrimSpace(info.Token),
		Platform:  strings.ToLower(strings.TrimSpace(info.Platform)),
	}

	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to upsert device")
	}

	s.log(ctx).Debug("Push token registered",
		slog.String("user_id", userID.String()),
		slog.String("device_id", device.DeviceID),
	)

	return device, nil
}

// GetUserDevices retrieves all registered devices for a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	return devices, nil
}

// RemoveDevice unregisters one of the user's devices
func (s *deviceService) RemoveDevice(ctx context.Context, userID uuid.UUID, deviceID string) error {
	if err := s.deviceRepo.DeleteDevice(ctx, userID, deviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

// TokensFor flattens the devices of userIDs into push targets. Users without
// devices contribute nothing.
func (s *deviceService) TokensFor(ctx context.Context, userIDs []uuid.UUID) ([]entity.PushTarget, error) {
	if len(userIDs) == 0 {
		return []entity.PushTarget{}, nil
	}

	devices, err := s.deviceRepo.FindDevicesByUsers(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by users")
	}

	targets := make([]entity.PushTarget, 0, len(devices))
	for _, device := range devices {
		targets = append(targets, device.ToPushTarget())
	}

	return targets, nil
}
