package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// The reset_* columns hold the forgot-password throttle and the pending OTP.
type UserModel struct {
	ID                 uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email              string                      `gorm:"type:varchar(255);uniqueIndex:idx_users_email_lower,expression:lower(email);not null"`
	Name               string                      `gorm:"type:varchar(100)"`
	Roles              datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[\"member\"]'"`
	PasswordHash       string                      `gorm:"type:varchar(255);not null;default:''"`
	ResetOTPHash       string                      `gorm:"column:reset_otp_hash;type:varchar(255);not null;default:''"`
	ResetOTPExpiresAt  *time.Time                  `gorm:"column:reset_otp_expires_at"`
	ResetAttemptCount  int                         `gorm:"column:reset_attempt_count;not null;default:0"`
	ResetLastAttemptAt *time.Time                  `gorm:"column:reset_last_attempt_at"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
