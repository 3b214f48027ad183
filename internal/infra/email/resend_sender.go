// Package email contains EmailSender implementations and the message templates.
package email

import (
	"context"
	"log/slog"

	"flock/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
)

type resendSender struct {
	client *resend.Client
	from   string
	logger *slog.Logger
}

// NewResendSender sends mail through the Resend API.
func NewResendSender(apiKey, from string, logger *slog.Logger) service.EmailSender {
	return &resendSender{
		client: resend.NewClient(apiKey),
		from:   from,
		logger: logger,
	}
}

func (s *resendSender) Send(ctx context.Context, to, subject, html string) error {
	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return errors.Wrap(err, "resend send failed")
	}

	s.logger.Debug("[Resend] Email sent", slog.String("id", sent.Id), slog.String("subject", subject))

	return nil
}
