package sqlite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dataincloud/resource-api/internal/store"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// MapError maps a GORM or go-sqlite3 error to the store error vocabulary.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if isForeignKeyError(sqliteErr) {
			return fmt.Errorf("%w: foreign key violation: %v", store.ErrInvalidEntity, err)
		}
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case sqlite3.ErrConstraintCheck:
			return fmt.Errorf("%w: check constraint violation: %v", store.ErrInvalidEntity, err)
		case sqlite3.ErrConstraintNotNull:
			return fmt.Errorf("%w: not null violation: %v", store.ErrInvalidEntity, err)
		}
	}

	return err
}

// IsForeignKeyViolation checks if err is a SQLite foreign key constraint failure.
func IsForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && isForeignKeyError(sqliteErr)
}

// A RESTRICT action is enforced by an internal trigger, so SQLite reports it
// with extended code SQLITE_CONSTRAINT_TRIGGER rather than the foreign key code.
// Only the message identifies it.
func isForeignKeyError(e sqlite3.Error) bool {
	if e.ExtendedCode == sqlite3.ErrConstraintForeignKey {
		return true
	}
	return e.Code == sqlite3.ErrConstraint &&
		strings.Contains(e.Error(), "FOREIGN KEY constraint failed")
}
