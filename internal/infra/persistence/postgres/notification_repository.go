// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"flock/config"
	"flock/internal/domain/entity"
	domainerrors "flock/internal/domain/errors"
	"flock/internal/domain/repository"
	"flock/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultInsertBatchSize = 100

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db        *gorm.DB
	batchSize int
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB, cfg *config.Config) repository.NotificationRepository {
	batchSize := defaultInsertBatchSize
	if cfg != nil && cfg.Notification != nil && cfg.Notification.InsertBatchSize > 0 {
		batchSize = cfg.Notification.InsertBatchSize
	}

	return &notificationRepository{
		db:        db,
		batchSize: batchSize,
	}
}

// BatchCreate inserts the records chunk by chunk. Each chunk commits on its own;
// generated IDs and timestamps are copied back onto the entities.
func (repo *notificationRepository) BatchCreate(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	models := make([]*model.NotificationModel, len(notifications))
	for i, n := range notifications {
		models[i] = fromNotificationDomain(n)
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(models, repo.batchSize).Error; err != nil {
		if isValueTooLong(err) {
			return domainerrors.ErrValidationFailed.WithDetails("notification content too long")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notifications")
	}

	for i, m := range models {
		notifications[i].ID = m.ID
		notifications[i].CreatedAt = m.CreatedAt
	}

	return nil
}

// FindByIDForRecipient retrieves a record only if recipientID owns it.
func (repo *notificationRepository) FindByIDForRecipient(ctx context.Context, id, recipientID uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// FindByRecipient returns the newest records for the recipient.
func (repo *notificationRepository) FindByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by recipient")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, m := range notificationModels {
		notifications = append(notifications, toNotificationDomain(m))
	}

	return notifications, nil
}

// MarkRead sets read=true on an owned record. Zero affected rows is
// disambiguated with an ownership lookup so already-read stays a no-op.
func (repo *notificationRepository) MarkRead(ctx context.Context, id, recipientID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND recipient_id = ? AND read = ?", id, recipientID, false).
		Update("read", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check notification ownership")
	}
	if count == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkAllReadBefore marks unread records created at or before snapshot, so
// records arriving while the update runs stay unread.
func (repo *notificationRepository) MarkAllReadBefore(ctx context.Context, recipientID uuid.UUID, snapshot time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND read = ? AND created_at <= ?", recipientID, false, snapshot).
		Update("read", true)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark all notifications read")
	}

	return result.RowsAffected, nil
}

// CountUnread returns the recipient's unread total.
func (repo *notificationRepository) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND read = ?", recipientID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:          data.ID,
		RecipientID: data.RecipientID,
		Title:       data.Title,
		Message:     data.Message,
		Type:        entity.NotificationType(data.Type),
		Read:        data.Read,
		Data:        map[string]any(data.Data),
		CreatedAt:   data.CreatedAt,
	}
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:          data.ID,
		RecipientID: data.RecipientID,
		Title:       data.Title,
		Message:     data.Message,
		Type:        string(data.Type),
		Read:        data.Read,
		Data:        data.Data,
		CreatedAt:   data.CreatedAt,
	}
}
