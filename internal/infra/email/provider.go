package email

import (
	"log/slog"

	"flock/config"
	"flock/internal/domain/constants"
	"flock/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SenderParams holds dependencies for EmailSender, injected by Fx
type SenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewEmailSender creates an EmailSender based on configuration
func NewEmailSender(params SenderParams) (service.EmailSender, error) {
	cfg := params.Config.Email

	switch cfg.Provider {
	case constants.EmailProviderResend:
		if cfg.Resend.APIKey == "" {
			return nil, errors.New("resend api key is required for resend provider")
		}
		params.Logger.Info("Using Resend email sender")

		return NewResendSender(cfg.Resend.APIKey, cfg.From, params.Logger), nil

	case constants.EmailProviderSMTP:
		if cfg.SMTP.Host == "" {
			return nil, errors.New("smtp host is required for smtp provider")
		}
		params.Logger.Info("Using SMTP email sender", slog.String("host", cfg.SMTP.Host))

		return NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.From), nil

	case constants.EmailProviderLog, "":
		params.Logger.Info("Using log email sender, mail will not be delivered")

		return NewLogSender(params.Logger), nil

	default:
		return nil, errors.Errorf("unknown email provider: %s", cfg.Provider)
	}
}
