package email

import (
	"context"

	"flock/internal/domain/service"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender sends mail through a plain SMTP relay.
func NewSMTPSender(host string, port int, username, password, from string) service.EmailSender {
	return &smtpSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (s *smtpSender) Send(ctx context.Context, to, subject, html string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "smtp send failed")
	}

	return nil
}
