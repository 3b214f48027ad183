package impl

import (
	"io"
	"log/slog"
	"time"

	"flock/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
		PasswordReset: &config.PasswordResetConfig{
			ThrottleWindow: 15 * time.Minute,
			MaxAttempts:    3,
			OTPTTL:         10 * time.Minute,
			TokenTTL:       15 * time.Minute,
		},
		Notification: &config.NotificationConfig{ListLimit: 50, InsertBatchSize: 100},
		Push:         &config.PushConfig{Provider: "expo"},
		Email:        &config.EmailConfig{Provider: "log", AppName: "Flock"},
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
