package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"flock/config"
	"flock/internal/domain/entity"
	"flock/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCMMaxBatchSize is the most messages SendEach accepts per call.
const FCMMaxBatchSize = 500

// FCM registration tokens are long URL-safe strings, usually "<instance>:<payload>".
var fcmTokenPattern = regexp.MustCompile(`^[A-Za-z0-9_\-:.]{32,4096}$`)

type fcmProvider struct {
	client *messaging.Client
}

// NewFCMProvider creates a Firebase Cloud Messaging push provider.
func NewFCMProvider(ctx context.Context, cfg *config.FirebaseConfig) (service.PushProvider, error) {
	if cfg == nil || cfg.CredentialsPath == "" {
		return nil, fmt.Errorf("firebase credentials path is required for fcm provider")
	}

	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &fcmProvider{client: client}, nil
}

func (p *fcmProvider) Name() string {
	return "fcm"
}

func (p *fcmProvider) MaxBatchSize() int {
	return FCMMaxBatchSize
}

func (p *fcmProvider) IsValidToken(token string) bool {
	return fcmTokenPattern.MatchString(token)
}

// Send delivers the batch with SendEach and converts each response into a ticket.
func (p *fcmProvider) Send(ctx context.Context, messages []service.PushMessage) ([]entity.DispatchTicket, error) {
	if len(messages) == 0 {
		return nil, nil
	}
	if len(messages) > FCMMaxBatchSize {
		return nil, fmt.Errorf("batch size %d exceeds fcm limit %d", len(messages), FCMMaxBatchSize)
	}

	fcmMessages := make([]*messaging.Message, len(messages))
	for i := range messages {
		fcmMessages[i] = toFCMMessage(&messages[i])
	}

	response, err := p.client.SendEach(ctx, fcmMessages)
	if err != nil {
		return nil, fmt.Errorf("failed to send fcm batch: %w", err)
	}

	tickets := make([]entity.DispatchTicket, len(messages))
	for i, sendResponse := range response.Responses {
		tickets[i] = ticketFromFCM(messages[i].To, sendResponse)
	}

	return tickets, nil
}

func toFCMMessage(msg *service.PushMessage) *messaging.Message {
	badge := msg.Badge

	return &messaging.Message{
		Token: msg.To,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: stringifyData(msg.Data),
		Android: &messaging.AndroidConfig{
			Priority: msg.Priority,
			Notification: &messaging.AndroidNotification{
				Sound: msg.Sound,
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: msg.Sound,
					Badge: &badge,
				},
			},
		},
	}
}

func ticketFromFCM(token string, resp *messaging.SendResponse) entity.DispatchTicket {
	if resp == nil {
		return entity.DispatchTicket{Token: token, Status: entity.TicketStatusError, Message: "missing response"}
	}
	if resp.Success {
		return entity.DispatchTicket{Token: token, Status: entity.TicketStatusOK, ID: resp.MessageID}
	}

	ticket := entity.DispatchTicket{Token: token, Status: entity.TicketStatusError}
	if resp.Error != nil {
		ticket.Message = resp.Error.Error()
		if messaging.IsUnregistered(resp.Error) {
			ticket.ErrorDetail = entity.TicketErrorDeviceNotRegistered
		} else if messaging.IsInvalidArgument(resp.Error) {
			ticket.ErrorDetail = "InvalidArgument"
		}
	}

	return ticket
}

// stringifyData flattens the opaque payload; FCM data values must be strings.
func stringifyData(data map[string]any) map[string]string {
	if len(data) == 0 {
		return nil
	}

	out := make(map[string]string, len(data))
	for k, v := range data {
		switch val := v.(type) {
		case string:
			out[k] = val
		default:
			encoded, err := json.Marshal(val)
			if err != nil {
				out[k] = fmt.Sprint(val)

				continue
			}
			out[k] = string(encoded)
		}
	}

	return out
}
