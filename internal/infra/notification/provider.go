// Package notification contains the push delivery providers.
package notification

import (
	"context"
	"log/slog"

	"flock/config"
	"flock/internal/domain/constants"
	"flock/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for PushProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushProvider selects the push provider named in configuration.
func NewPushProvider(params ProviderParams) (service.PushProvider, error) {
	cfg := params.Config.Push

	switch cfg.Provider {
	case constants.PushProviderExpo, "":
		params.Logger.Info("Using Expo push provider", slog.String("api_url", cfg.Expo.APIURL))

		return NewExpoProvider(cfg.Expo), nil

	case constants.PushProviderFCM:
		params.Logger.Info("Using Firebase Cloud Messaging push provider")

		return NewFCMProvider(params.Ctx, params.Config.Firebase)

	default:
		return nil, errors.Errorf("unknown push provider: %s", cfg.Provider)
	}
}
