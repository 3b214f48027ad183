package postgres

import (
	"testing"
	"time"

	"flock/internal/domain/entity"
	"flock/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGroupDomain_ResolvesReferenceAndPreloadedMembers(t *testing.T) {
	refID := uuid.New()
	populatedID := uuid.New()

	group := toGroupDomain(&model.GroupModel{
		ID:   uuid.New(),
		Name: "Choir",
		Members: []model.GroupMemberModel{
			{UserID: refID},
			{UserID: populatedID, User: &model.UserModel{ID: populatedID, Email: "ruth@example.org"}},
		},
	})

	require.NotNil(t, group)
	assert.Equal(t, "Choir", group.Name)
	assert.ElementsMatch(t, []uuid.UUID{refID, populatedID}, group.MemberIDs)
}

func TestToUserDomain_MapsResetState(t *testing.T) {
	expires := time.Date(2026, 3, 1, 9, 10, 0, 0, time.UTC)
	last := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	user := toUserDomain(&model.UserModel{
		ID:                 uuid.New(),
		Email:              "ruth@example.org",
		Roles:              []string{"admin", "bogus"},
		ResetOTPHash:       "hash",
		ResetOTPExpiresAt:  &expires,
		ResetAttemptCount:  2,
		ResetLastAttemptAt: &last,
	})

	assert.Equal(t, entity.Roles{entity.RoleAdmin}, user.Roles)
	assert.Equal(t, entity.ResetAttemptState{
		OTPHash:       "hash",
		OTPExpiresAt:  &expires,
		AttemptCount:  2,
		LastAttemptAt: &last,
	}, user.ResetState)
}

func TestResetColumns_WritesZeroValues(t *testing.T) {
	columns := resetColumns(entity.ResetAttemptState{})

	assert.Equal(t, "", columns["reset_otp_hash"])
	assert.Equal(t, 0, columns["reset_attempt_count"])
	assert.Contains(t, columns, "reset_otp_expires_at")
	assert.Contains(t, columns, "reset_last_attempt_at")
}

func TestNotificationMappers_RoundTripData(t *testing.T) {
	n := &entity.Notification{
		RecipientID: uuid.New(),
		Title:       "Service Update",
		Message:     "Moved to 10am",
		Type:        entity.NotificationTypeUpdate,
		Data:        map[string]any{"screen": "events"},
	}

	back := toNotificationDomain(fromNotificationDomain(n))

	assert.Equal(t, n.Data, back.Data)
	assert.Equal(t, n.Type, back.Type)
	assert.False(t, back.Read)
}
