package email

import (
	"context"
	"log/slog"

	"flock/internal/domain/service"
)

// logSender writes mail to the log instead of sending it, for local development.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender creates an EmailSender that only logs.
func NewLogSender(logger *slog.Logger) service.EmailSender {
	return &logSender{logger: logger}
}

// Send logs the envelope at info. The body can carry a one-time code, so it
// is only written at debug.
func (s *logSender) Send(ctx context.Context, to, subject, html string) error {
	s.logger.InfoContext(ctx, "[LogEmail] Email not sent, log provider active",
		slog.String("to", to),
		slog.String("subject", subject),
	)
	s.logger.DebugContext(ctx, "[LogEmail] Email body",
		slog.String("to", to),
		slog.String("html", html),
	)

	return nil
}
