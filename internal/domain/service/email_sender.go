package service

import "context"

// EmailSender delivers a single HTML e-mail. Callers in this service treat
// delivery as best effort.
type EmailSender interface {
	Send(ctx context.Context, to, subject, html string) error
}
