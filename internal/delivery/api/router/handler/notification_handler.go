package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"flock/internal/delivery/api/response"
	deliverycontext "flock/internal/delivery/context"
	"flock/internal/domain/entity"
	domainerrors "flock/internal/domain/errors"
	"flock/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the notification inbox and the admin send endpoints.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// SendNotificationRequest is the body of POST /api/v1/notifications/send.
type SendNotificationRequest struct {
	Title   string         `json:"title" validate:"required,max=200"`
	Message string         `json:"message" validate:"required,max=4000"`
	UserID  string         `json:"userId" validate:"required,uuid"`
	Type    string         `json:"type" validate:"omitempty,oneof=meeting message reminder update general"`
	Data    map[string]any `json:"data"`
}

// SendBulkRequest is the body of POST /api/v1/notifications/bulk. Exactly one
// of Recipients, GroupIDs or All selects the audience.
type SendBulkRequest struct {
	Title      string         `json:"title" validate:"required,max=200"`
	Message    string         `json:"message" validate:"required,max=4000"`
	Recipients []string       `json:"recipients" validate:"omitempty,dive,uuid"`
	GroupIDs   []string       `json:"groupIds" validate:"omitempty,dive,uuid"`
	All        bool           `json:"all"`
	Type       string         `json:"type" validate:"omitempty,oneof=meeting message reminder update general"`
	Data       map[string]any `json:"data"`
}

// Send handles an admin sending a notification to one user
func (h *NotificationHandler) Send(c echo.Context) error {
	senderID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.notificationUC.SendToUser(c.Request().Context(), usecase.SendNotificationInput{
		SenderID:    senderID,
		RecipientID: uuid.MustParse(req.UserID),
		Title:       req.Title,
		Message:     req.Message,
		Type:        entity.NotificationType(req.Type),
		Data:        req.Data,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"notification": out.Notification})
}

// SendBulk handles an admin sending a notification to many users
func (h *NotificationHandler) SendBulk(c echo.Context) error {
	senderID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SendBulkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	target, err := req.target()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.notificationUC.SendBulk(c.Request().Context(), usecase.SendBulkInput{
		SenderID: senderID,
		Target:   target,
		Title:    req.Title,
		Message:  req.Message,
		Type:     entity.NotificationType(req.Type),
		Data:     req.Data,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"message": fmt.Sprintf("Notification sent to %d recipients", out.Count),
		"count":   out.Count,
	})
}

// List handles retrieving the caller's notifications
func (h *NotificationHandler) List(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	notifications, err := h.notificationUC.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

// UnreadCount handles retrieving the caller's unread count
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	count, err := h.notificationUC.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": count})
}

// Get handles retrieving one notification. Opening it marks it read.
func (h *NotificationHandler) Get(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	notification, err := h.notificationUC.GetForUser(c.Request().Context(), userID, notificationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notification)
}

// MarkRead handles marking one notification read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), userID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification marked as read"})
}

// MarkAllRead handles marking every notification of the caller read
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	updated, err := h.notificationUC.MarkAllRead(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"updated": updated})
}

func (r *SendBulkRequest) target() (entity.RecipientTarget, error) {
	selected := 0
	if len(r.Recipients) > 0 {
		selected++
	}
	if len(r.GroupIDs) > 0 {
		selected++
	}
	if r.All {
		selected++
	}
	if selected != 1 {
		return entity.RecipientTarget{}, domainerrors.ErrValidationFailed.WithDetails(
			"exactly one of recipients, groupIds or all is required")
	}

	switch {
	case r.All:
		return entity.AllUsers(), nil
	case len(r.Recipients) > 0:
		return entity.Users(parseUUIDs(r.Recipients)...), nil
	default:
		return entity.Groups(parseUUIDs(r.GroupIDs)...), nil
	}
}

// parseUUIDs expects ids already checked by the uuid validation tag.
func parseUUIDs(ids []string) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, uuid.MustParse(id))
	}

	return out
}
