package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	wrapped := func(code string) error {
		return errors.Wrap(&pgconn.PgError{Code: code, Message: "violation"}, "insert failed")
	}

	tests := []struct {
		name                    string
		err                     error
		unique, notNull, checks bool
	}{
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, unique: true},
		{name: "pg unique", err: wrapped(pgCodeUniqueViolation), unique: true},
		{name: "pg not null", err: wrapped(pgCodeNotNullViolation), notNull: true},
		{name: "gorm check", err: gorm.ErrCheckConstraintViolated, checks: true},
		{name: "pg check", err: wrapped(pgCodeCheckViolation), checks: true},
		{name: "foreign key is not translated", err: wrapped("23503")},
		{name: "plain error", err: errors.New("null value in column")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
			assert.Equal(t, tt.checks, isCheckConstraintViolation(tt.err))
		})
	}
}
