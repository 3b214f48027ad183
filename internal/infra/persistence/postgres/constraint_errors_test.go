package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		foreignKey bool
		notNull    bool
		tooLong    bool
	}{
		{
			name:       "translated foreign key",
			err:        errors.Wrap(gorm.ErrForeignKeyViolated, "insert"),
			foreignKey: true,
		},
		{
			name:       "raw foreign key",
			err:        errors.New(`ERROR: insert or update on table "user_devices" violates foreign key constraint (SQLSTATE 23503)`),
			foreignKey: true,
		},
		{
			name:    "not null",
			err:     errors.New(`ERROR: null value in column "push_token" violates not-null constraint (SQLSTATE 23502)`),
			notNull: true,
		},
		{
			name:    "too long",
			err:     errors.New(`ERROR: value too long for type character varying(200) (SQLSTATE 22001)`),
			tooLong: true,
		},
		{
			name: "connection reset",
			err:  errors.New("read tcp: connection reset by peer"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
			assert.Equal(t, tt.tooLong, isValueTooLong(tt.err))
		})
	}
}
