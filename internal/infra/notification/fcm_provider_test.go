package notification

import (
	"errors"
	"testing"

	"flock/internal/domain/entity"
	"flock/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringifyData(t *testing.T) {
	out := stringifyData(map[string]any{
		"screen": "notifications",
		"count":  3,
		"meta":   map[string]any{"groupId": "g1"},
	})

	assert.Equal(t, "notifications", out["screen"])
	assert.Equal(t, "3", out["count"])
	assert.JSONEq(t, `{"groupId":"g1"}`, out["meta"])
	assert.Nil(t, stringifyData(nil))
}

func TestToFCMMessage_CarriesSoundPriorityBadge(t *testing.T) {
	msg := toFCMMessage(&service.PushMessage{
		To: "token", Title: "t", Body: "b", Sound: "default", Priority: "high", Badge: 1,
	})

	require.NotNil(t, msg.Android)
	assert.Equal(t, "high", msg.Android.Priority)
	assert.Equal(t, "default", msg.Android.Notification.Sound)
	require.NotNil(t, msg.APNS.Payload.Aps.Badge)
	assert.Equal(t, 1, *msg.APNS.Payload.Aps.Badge)
	assert.Equal(t, "default", msg.APNS.Payload.Aps.Sound)
}

func TestTicketFromFCM(t *testing.T) {
	ok := ticketFromFCM("a", &messaging.SendResponse{Success: true, MessageID: "m1"})
	assert.Equal(t, entity.TicketStatusOK, ok.Status)
	assert.Equal(t, "m1", ok.ID)

	failed := ticketFromFCM("b", &messaging.SendResponse{Error: errors.New("quota exceeded")})
	assert.Equal(t, entity.TicketStatusError, failed.Status)
	assert.Equal(t, "quota exceeded", failed.Message)
	assert.False(t, failed.IsUnregistered())

	missing := ticketFromFCM("c", nil)
	assert.Equal(t, entity.TicketStatusError, missing.Status)
}

func TestFCMProvider_IsValidToken(t *testing.T) {
	provider := &fcmProvider{}

	assert.True(t, provider.IsValidToken("dQw4w9WgXcQ:APA91bHPRgkF3JUikC4ENAHEeMrd41Zxv3hVZjC9KtT8OvPVGJ"))
	assert.False(t, provider.IsValidToken("ExponentPushToken[abc]"))
	assert.False(t, provider.IsValidToken("short"))
}
