package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// One row per recipient per send.
type NotificationModel struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipientID uuid.UUID         `gorm:"type:uuid;not null;index:idx_notifications_recipient_created,priority:1"`
	Title       string            `gorm:"type:varchar(200);not null"`
	Message     string            `gorm:"type:text;not null"`
	Type        string            `gorm:"type:varchar(20);not null;default:'general'"`
	Read        bool              `gorm:"not null;default:false"`
	Data        datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt   time.Time         `gorm:"index:idx_notifications_recipient_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
