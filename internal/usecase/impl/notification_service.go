package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"flock/config"
	deliverycontext "flock/internal/delivery/context"
	"flock/internal/domain/entity"
	domainerrors "flock/internal/domain/errors"
	"flock/internal/domain/repository"
	"flock/internal/domain/service"
	"flock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxListLimit = 50
	maxTitleLength   = 200
	maxMessageLength = 4000
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	resolver         usecase.RecipientResolver
	devices          usecase.DeviceUsecase
	dispatcher       usecase.PushDispatcher
	publisher        service.EventPublisher
	listLimit        int
	now              func() time.Time
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	UserRepo         repository.UserRepository
	Resolver         usecase.RecipientResolver
	Devices          usecase.DeviceUsecase
	Dispatcher       usecase.PushDispatcher
	Publisher        service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	listLimit := maxListLimit
	if params.Config != nil && params.Config.Notification != nil && params.Config.Notification.ListLimit > 0 {
		listLimit = min(params.Config.Notification.ListLimit, maxListLimit)
	}

	return &notificationService{
		notificationRepo: params.NotificationRepo,
		userRepo:         params.UserRepo,
		resolver:         params.Resolver,
		devices:          params.Devices,
		dispatcher:       params.Dispatcher,
		publisher:        params.Publisher,
		listLimit:        listLimit,
		now:              time.Now,
		logger:           params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SendToUser stores one record for the recipient and pushes it to their devices.
func (s *notificationService) SendToUser(ctx context.Context, input usecase.SendNotificationInput) (*usecase.SendNotificationOutput, error) {
	content, err := normalizeContent(input.Title, input.Message, input.Type, input.Data)
	if err != nil {
		return nil, err
	}

	if input.RecipientID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("userId is required")
	}

	if _, err := s.userRepo.FindByID(ctx, input.RecipientID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("recipient not found")
		}

		return nil, errors.Wrap(err, "failed to load recipient")
	}

	records, summary, err := s.fanOut(ctx, input.SenderID, []uuid.UUID{input.RecipientID}, content)
	if err != nil {
		return nil, err
	}

	return &usecase.SendNotificationOutput{Notification: records[0], Dispatch: summary}, nil
}

// SendBulk resolves the target and fans out one record per recipient. Input is
// fully validated before anything is written; an empty recipient set is rejected.
func (s *notificationService) SendBulk(ctx context.Context, input usecase.SendBulkInput) (*usecase.SendBulkOutput, error) {
	content, err := normalizeContent(input.Title, input.Message, input.Type, input.Data)
	if err != nil {
		return nil, err
	}

	if err := validateTarget(input.Target); err != nil {
		return nil, err
	}

	recipients, err := s.resolver.Resolve(ctx, input.Target)
	if err != nil {
		return nil, err
	}

	if len(recipients) == 0 {
		return nil, domainerrors.ErrNoRecipients
	}

	records, summary, err := s.fanOut(ctx, input.SenderID, recipients, content)
	if err != nil {
		return nil, err
	}

	return &usecase.SendBulkOutput{Count: len(records), Dispatch: summary}, nil
}

// fanOut writes one record per recipient, then pushes to their devices. A
// failed write is returned and nothing is pushed. Once the records exist the
// call succeeds regardless of what happens during delivery.
func (s *notificationService) fanOut(
	ctx context.Context,
	senderID uuid.UUID,
	recipients []uuid.UUID,
	content entity.NotificationContent,
) ([]*entity.Notification, *entity.DispatchSummary, error) {
	createdAt := s.now()
	records := make([]*entity.Notification, len(recipients))
	for i, recipientID := range recipients {
		records[i] = &entity.Notification{
			ID:          uuid.New(),
			RecipientID: recipientID,
			Title:       content.Title,
			Message:     content.Message,
			Type:        content.Type,
			Data:        content.Data,
			CreatedAt:   createdAt,
		}
	}

	if err := s.notificationRepo.BatchCreate(ctx, records); err != nil {
		return nil, nil, errors.Wrap(err, "failed to store notifications")
	}

	// Delivery must not be cut short by the caller hanging up.
	deliveryCtx := context.WithoutCancel(ctx)
	summary := &entity.DispatchSummary{}

	targets, err := s.devices.TokensFor(deliveryCtx, recipients)
	if err != nil {
		s.log(ctx).Error("Failed to load push tokens, skipping push",
			slog.Int("recipients", len(recipients)),
			slog.Any("error", err),
		)
	} else {
		summary = s.dispatcher.Dispatch(deliveryCtx, targets, content)
	}

	s.publishSent(deliveryCtx, senderID, recipients, content, summary)

	return records, summary, nil
}

func (s *notificationService) publishSent(
	ctx context.Context,
	senderID uuid.UUID,
	recipients []uuid.UUID,
	content entity.NotificationContent,
	summary *entity.DispatchSummary,
) {
	recipientIDs := make([]string, len(recipients))
	for i, id := range recipients {
		recipientIDs[i] = id.String()
	}

	event := &service.NotificationSentEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		SenderID:       senderID.String(),
		Title:          content.Title,
		Type:           string(content.Type),
		RecipientCount: len(recipients),
		RecipientIDs:   recipientIDs,
		Dispatch:       summary,
	}

	if err := s.publisher.PublishNotificationSent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish notification.sent event", slog.Any("error", err))
	}
}

// ListForUser returns the user's newest notifications first
func (s *notificationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	notifications, err := s.notificationRepo.FindByRecipient(ctx, userID, s.listLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// GetForUser returns one of the user's notifications and marks it read.
func (s *notificationService) GetForUser(ctx context.Context, userID, notificationID uuid.UUID) (*entity.Notification, error) {
	notification, err := s.notificationRepo.FindByIDForRecipient(ctx, notificationID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to load notification")
	}

	if !notification.Read {
		if err := s.notificationRepo.MarkRead(ctx, notificationID, userID); err != nil {
			return nil, errors.Wrap(err, "failed to mark notification read")
		}
		notification.Read = true
	}

	return notification, nil
}

// MarkRead marks one of the user's notifications read. Records owned by
// someone else are reported as not found.
func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := s.notificationRepo.MarkRead(ctx, notificationID, userID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// MarkAllRead marks every unread record that existed when the call started.
// Records delivered concurrently stay unread.
func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	updated, err := s.notificationRepo.MarkAllReadBefore(ctx, userID, s.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark all notifications read")
	}

	return updated, nil
}

// UnreadCount returns how many of the user's notifications are unread
func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

func normalizeContent(title, message string, notificationType entity.NotificationType, data map[string]any) (entity.NotificationContent, error) {
	title = strings.TrimSpace(title)
	message = strings.TrimSpace(message)

	var problems []string
	if title == "" {
		problems = append(problems, "title is required")
	} else if len(title) > maxTitleLength {
		problems = append(problems, "title is too long")
	}
	if message == "" {
		problems = append(problems, "message is required")
	} else if len(message) > maxMessageLength {
		problems = append(problems, "message is too long")
	}

	if notificationType == "" {
		notificationType = entity.NotificationTypeGeneral
	} else if !notificationType.IsValid() {
		problems = append(problems, "unknown type: "+string(notificationType))
	}

	if len(problems) > 0 {
		return entity.NotificationContent{}, domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, ", "))
	}

	if data == nil {
		data = map[string]any{}
	}

	return entity.NotificationContent{
		Title:   title,
		Message: message,
		Type:    notificationType,
		Data:    data,
	}, nil
}

func validateTarget(target entity.RecipientTarget) error {
	switch target.Scope {
	case entity.RecipientScopeAll:
		return nil
	case entity.RecipientScopeUsers:
		if len(target.UserIDs) == 0 {
			return domainerrors.ErrValidationFailed.WithDetails("recipients must not be empty")
		}
	case entity.RecipientScopeGroups:
		if len(target.GroupIDs) == 0 {
			return domainerrors.ErrValidationFailed.WithDetails("groupIds must not be empty")
		}
	default:
		return domainerrors.ErrValidationFailed.WithDetails("one of recipients, groupIds or all is required")
	}

	ids := target.UserIDs
	if target.Scope == entity.RecipientScopeGroups {
		ids = target.GroupIDs
	}
	for _, id := range ids {
		if id == uuid.Nil {
			return domainerrors.ErrValidationFailed.WithDetails("recipient list contains an empty id")
		}
	}

	return nil
}
