package postgres

import (
	"context"
	"testing"

	"flock/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_ResetPassword_ClearsResetStateInOneUpdate(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewUserRepository(db)

	err := repo.ResetPassword(context.Background(), uuid.New(), "new-hash", "otp-hash")
	// A dry run affects no rows.
	require.ErrorIs(t, err, repository.ErrResetStateChanged)

	require.Len(t, *statements, 1)
	sql := (*statements)[0]
	assert.Contains(t, sql, `UPDATE "users" SET`)
	assert.Contains(t, sql, `"password_hash"='new-hash'`)
	assert.Contains(t, sql, `"reset_otp_hash"=''`)
	assert.Contains(t, sql, `"reset_otp_expires_at"=NULL`)
	assert.Contains(t, sql, `"reset_attempt_count"=0`)
	assert.Contains(t, sql, `"reset_last_attempt_at"=NULL`)
	assert.Contains(t, sql, `reset_otp_hash = 'otp-hash'`)
}

func TestUserRepository_ResetPassword_RequiresIssuedCode(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewUserRepository(db)

	err := repo.ResetPassword(context.Background(), uuid.New(), "new-hash", "")
	require.ErrorIs(t, err, repository.ErrResetStateChanged)
	assert.Empty(t, *statements)
}
