package handler

import (
	"net/http"
	"testing"

	"flock/internal/domain/entity"
	domainerrors "flock/internal/domain/errors"
	mockUsecase "flock/internal/mocks/usecase"
	"flock/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestNotificationHandler(t *testing.T) (*NotificationHandler, *mockUsecase.MockNotificationUsecase) {
	uc := mockUsecase.NewMockNotificationUsecase(t)

	return NewNotificationHandler(NotificationHandlerParams{NotificationUC: uc, Logger: newDiscardLogger()}), uc
}

func TestNotificationHandler_Send(t *testing.T) {
	h, uc := newTestNotificationHandler(t)
	adminID := uuid.New()
	recipientID := uuid.New()
	stored := &entity.Notification{ID: uuid.New(), RecipientID: recipientID, Title: "Choir", Message: "Practice moved", Type: entity.NotificationTypeMeeting}

	uc.EXPECT().SendToUser(mock.Anything, usecase.SendNotificationInput{
		SenderID:    adminID,
		RecipientID: recipientID,
		Title:       "Choir",
		Message:     "Practice moved",
		Type:        entity.NotificationTypeMeeting,
		Data:        map[string]any{"room": "B"},
	}).Return(&usecase.SendNotificationOutput{Notification: stored}, nil)

	rec, env := serve(t, h.Send, http.MethodPost, "/api/v1/notifications/send", map[string]any{
		"title":   "Choir",
		"message": "Practice moved",
		"userId":  recipientID.String(),
		"type":    "meeting",
		"data":    map[string]any{"room": "B"},
	}, withCaller(adminID, entity.RoleAdmin))

	require.Equal(t, http.StatusCreated, rec.Code)
	data := decodeData[map[string]entity.Notification](t, env)
	assert.Equal(t, stored.ID, data["notification"].ID)
}

func TestNotificationHandler_Send_Validation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing title", body: map[string]any{"message": "m", "userId": uuid.NewString()}},
		{name: "missing message", body: map[string]any{"title": "t", "userId": uuid.NewString()}},
		{name: "bad user id", body: map[string]any{"title": "t", "message": "m", "userId": "42"}},
		{name: "unknown type", body: map[string]any{"title": "t", "message": "m", "userId": uuid.NewString(), "type": "party"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestNotificationHandler(t)

			rec, env := serve(t, h.Send, http.MethodPost, "/api/v1/notifications/send", tt.body, withCaller(uuid.New(), entity.RoleAdmin))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), env.Error.Code)
		})
	}
}

func TestNotificationHandler_Send_UnknownRecipient(t *testing.T) {
	h, uc := newTestNotificationHandler(t)

	uc.EXPECT().SendToUser(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrNotFound.WithDetails("recipient not found"))

	rec, _ := serve(t, h.Send, http.MethodPost, "/api/v1/notifications/send", map[string]any{
		"title": "t", "message": "m", "userId": uuid.NewString(),
	}, withCaller(uuid.New(), entity.RoleAdmin))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotificationHandler_SendBulk_Targets(t *testing.T) {
	userA, userB := uuid.New(), uuid.New()
	group := uuid.New()

	tests := []struct {
		name   string
		body   map[string]any
		target entity.RecipientTarget
	}{
		{
			name:   "all",
			body:   map[string]any{"title": "t", "message": "m", "all": true},
			target: entity.AllUsers(),
		},
		{
			name:   "recipients",
			body:   map[string]any{"title": "t", "message": "m", "recipients": []string{userA.String(), userB.String()}},
			target: entity.Users(userA, userB),
		},
		{
			name:   "groups",
			body:   map[string]any{"title": "t", "message": "m", "groupIds": []string{group.String()}},
			target: entity.Groups(group),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newTestNotificationHandler(t)
			adminID := uuid.New()

			uc.EXPECT().SendBulk(mock.Anything, mock.MatchedBy(func(in usecase.SendBulkInput) bool {
				return in.SenderID == adminID && assert.ObjectsAreEqual(tt.target, in.Target)
			})).Return(&usecase.SendBulkOutput{Count: 2}, nil)

			rec, env := serve(t, h.SendBulk, http.MethodPost, "/api/v1/notifications/bulk", tt.body, withCaller(adminID, entity.RoleAdmin))

			require.Equal(t, http.StatusCreated, rec.Code)
			data := decodeData[map[string]any](t, env)
			assert.EqualValues(t, 2, data["count"])
			assert.Equal(t, "Notification sent to 2 recipients", data["message"])
		})
	}
}

func TestNotificationHandler_SendBulk_RequiresExactlyOneTarget(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "none", body: map[string]any{"title": "t", "message": "m"}},
		{name: "empty list", body: map[string]any{"title": "t", "message": "m", "recipients": []string{}}},
		{name: "all and groups", body: map[string]any{"title": "t", "message": "m", "all": true, "groupIds": []string{uuid.NewString()}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestNotificationHandler(t)

			rec, env := serve(t, h.SendBulk, http.MethodPost, "/api/v1/notifications/bulk", tt.body, withCaller(uuid.New(), entity.RoleAdmin))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), env.Error.Code)
		})
	}
}

func TestNotificationHandler_SendBulk_NoRecipients(t *testing.T) {
	h, uc := newTestNotificationHandler(t)

	uc.EXPECT().SendBulk(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNoRecipients)

	rec, env := serve(t, h.SendBulk, http.MethodPost, "/api/v1/notifications/bulk",
		map[string]any{"title": "t", "message": "m", "groupIds": []string{uuid.NewString()}},
		withCaller(uuid.New(), entity.RoleAdmin))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.ErrNoRecipients.ErrorCode(), env.Error.Code)
}

func TestNotificationHandler_List(t *testing.T) {
	h, uc := newTestNotificationHandler(t)
	userID := uuid.New()
	items := []*entity.Notification{
		{ID: uuid.New(), RecipientID: userID, Title: "newer"},
		{ID: uuid.New(), RecipientID: userID, Title: "older", Read: true},
	}

	uc.EXPECT().ListForUser(mock.Anything, userID).Return(items, nil)

	rec, env := serve(t, h.List, http.MethodGet, "/api/v1/notifications", nil, withCaller(userID))

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[[]entity.Notification](t, env)
	require.Len(t, got, 2)
	assert.Equal(t, "newer", got[0].Title)
}

func TestNotificationHandler_List_Unauthenticated(t *testing.T) {
	h, _ := newTestNotificationHandler(t)

	rec, _ := serve(t, h.List, http.MethodGet, "/api/v1/notifications", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNotificationHandler_UnreadCount(t *testing.T) {
	h, uc := newTestNotificationHandler(t)
	userID := uuid.New()

	uc.EXPECT().UnreadCount(mock.Anything, userID).Return(int64(3), nil)

	rec, env := serve(t, h.UnreadCount, http.MethodGet, "/api/v1/notifications/unread-count", nil, withCaller(userID))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), decodeData[map[string]int64](t, env)["count"])
}

func TestNotificationHandler_Get(t *testing.T) {
	h, uc := newTestNotificationHandler(t)
	userID := uuid.New()
	id := uuid.New()

	uc.EXPECT().GetForUser(mock.Anything, userID, id).
		Return(&entity.Notification{ID: id, RecipientID: userID, Read: true}, nil)

	rec, env := serve(t, h.Get, http.MethodGet, "/api/v1/notifications/"+id.String(), nil,
		withCaller(userID), withParam("id", id.String()))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeData[entity.Notification](t, env).Read)
}

func TestNotificationHandler_Get_InvalidID(t *testing.T) {
	h, _ := newTestNotificationHandler(t)

	rec, env := serve(t, h.Get, http.MethodGet, "/api/v1/notifications/abc", nil,
		withCaller(uuid.New()), withParam("id", "abc"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_ID", env.Error.Code)
}

func TestNotificationHandler_MarkRead_NotOwned(t *testing.T) {
	h, uc := newTestNotificationHandler(t)
	userID := uuid.New()
	id := uuid.New()

	uc.EXPECT().MarkRead(mock.Anything, userID, id).Return(domainerrors.ErrNotificationNotFound)

	rec, _ := serve(t, h.MarkRead, http.MethodPut, "/api/v1/notifications/"+id.String()+"/read", nil,
		withCaller(userID), withParam("id", id.String()))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	h, uc := newTestNotificationHandler(t)
	userID := uuid.New()

	uc.EXPECT().MarkAllRead(mock.Anything, userID).Return(int64(5), nil)

	rec, env := serve(t, h.MarkAllRead, http.MethodPut, "/api/v1/notifications/read-all", nil, withCaller(userID))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), decodeData[map[string]int64](t, env)["updated"])
}
