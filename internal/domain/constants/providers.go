// Package constants holds provider identifiers shared by config and infra.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Push providers
const (
	PushProviderExpo = "expo"
	PushProviderFCM  = "fcm"
)

// E-mail providers
const (
	EmailProviderResend = "resend"
	EmailProviderSMTP   = "smtp"
	EmailProviderLog    = "log"
)

// EventTypeNotificationSent is the event_type attribute on published events.
const EventTypeNotificationSent = "notification.sent"
