package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes seen on writes when gorm's TranslateError is off.
const (
	sqlStateNotNullViolation    = "23502"
	sqlStateForeignKeyViolation = "23503"
	sqlStateStringTooLong       = "22001"
)

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return strings.Contains(err.Error(), sqlStateForeignKeyViolation)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, sqlStateNotNullViolation)
}

// isValueTooLong reports a string that exceeds its varchar column.
func isValueTooLong(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "value too long") ||
		strings.Contains(errMsg, sqlStateStringTooLong)
}
