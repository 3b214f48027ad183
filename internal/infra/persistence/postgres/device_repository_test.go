package postgres

import (
	"context"
	"testing"

	"flock/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB builds statements with the postgres dialect without connecting.
// Every Create and Update it sees is recorded, with its arguments inlined.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{DSN: "host=localhost dbname=flock sslmode=disable"}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	var statements []string
	capture := func(tx *gorm.DB) {
		statements = append(statements, tx.Dialector.Explain(tx.Statement.SQL.String(), tx.Statement.Vars...))
	}
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:capture", capture))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:capture", capture))

	return db, &statements
}

func TestDeviceRepository_UpsertDevice_ReplacesTokenInSameSlot(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewDeviceRepository(db)
	userID := uuid.New()

	first := &entity.UserDevice{UserID: userID, DeviceID: "phone", PushToken: "ExponentPushToken[old]", Platform: "ios"}
	second := &entity.UserDevice{UserID: userID, DeviceID: "phone", PushToken: "ExponentPushToken[new]", Platform: "ios"}

	require.NoError(t, repo.UpsertDevice(context.Background(), first))
	require.NoError(t, repo.UpsertDevice(context.Background(), second))

	require.Len(t, *statements, 2)
	for _, sql := range *statements {
		assert.Contains(t, sql, `INSERT INTO "user_devices"`)
		assert.Contains(t, sql, `ON CONFLICT ("user_id","device_id") DO UPDATE SET`)
		assert.Contains(t, sql, `"push_token"="excluded"."push_token"`)
		assert.Contains(t, sql, `"platform"="excluded"."platform"`)
		assert.Contains(t, sql, `"updated_at"="excluded"."updated_at"`)
		assert.NotContains(t, sql, `"created_at"="excluded"."created_at"`)
		assert.NotContains(t, sql, "DO NOTHING")
	}
}
