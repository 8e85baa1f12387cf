package gormstore

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// restrictViolation maps a parent delete blocked by a foreign key to
// gorm.ErrForeignKeyViolated. mysql and postgres already translate it; sqlite
// reports it as a plain constraint failure that gorm leaves untouched.
func restrictViolation(err error) error {
	var se sqlite3.Error
	if errors.As(err, &se) && se.Code == sqlite3.ErrConstraint &&
		strings.Contains(se.Error(), "FOREIGN KEY") {
		return gorm.ErrForeignKeyViolated
	}
	return err
}
