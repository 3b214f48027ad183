package model

import (
	"time"

	"github.com/google/uuid"
)

// GroupModel mirrors the 'groups' table (ministries, small groups, choirs).
type GroupModel struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string             `gorm:"type:varchar(100);not null"`
	Members   []GroupMemberModel `gorm:"foreignKey:GroupID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GroupModel) TableName() string {
	return "groups"
}

// GroupMemberModel mirrors the 'group_members' join table. User is only
// populated when the query preloads it.
type GroupMemberModel struct {
	GroupID   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;primaryKey;index"`
	User      *UserModel `gorm:"foreignKey:UserID"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GroupMemberModel) TableName() string {
	return "group_members"
}
