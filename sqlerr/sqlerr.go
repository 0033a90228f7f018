// Package sqlerr classifies errors returned by database/sql operations
// against SQLite (github.com/mattn/go-sqlite3). All predicates unwrap with
// errors.As, so errors wrapped with fmt.Errorf("...: %w", err) classify the
// same as the bare driver error, and a nil or non-SQLite error is simply
// "no" for every question.
package sqlerr

import (
	"errors"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// Code extracts the primary SQLite result code from err. ok is false when
// err is nil or did not originate from the SQLite driver.
func Code(err error) (int, bool) {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return 0, false
	}
	return int(se.Code), true
}

// ExtendedCode extracts the extended SQLite result code, which narrows the
// primary code (e.g. SQLITE_CONSTRAINT_UNIQUE within SQLITE_CONSTRAINT).
func ExtendedCode(err error) (int, bool) {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return 0, false
	}
	return int(se.ExtendedCode), true
}

// IsConstraint reports whether err is any constraint violation.
func IsConstraint(err error) bool {
	return is(err, sqlite3.ErrConstraint)
}

// IsUniqueViolation reports whether err is a UNIQUE or PRIMARY KEY
// constraint violation.
func IsUniqueViolation(err error) bool {
	return isExtended(err, sqlite3.ErrConstraintUnique) ||
		isExtended(err, sqlite3.ErrConstraintPrimaryKey)
}

// IsForeignKeyViolation reports whether err is a FOREIGN KEY constraint
// violation.
func IsForeignKeyViolation(err error) bool {
	return isExtended(err, sqlite3.ErrConstraintForeignKey)
}

// IsNotNullViolation reports whether err is a NOT NULL constraint violation.
func IsNotNullViolation(err error) bool {
	return isExtended(err, sqlite3.ErrConstraintNotNull)
}

// IsBusy reports whether err means the database file was locked by another
// connection (SQLITE_BUSY). Busy errors are the retryable kind.
func IsBusy(err error) bool {
	return is(err, sqlite3.ErrBusy)
}

// IsLocked reports whether err means a table was locked within this
// connection (SQLITE_LOCKED). Unlike busy, retrying on the same connection
// will not help.
func IsLocked(err error) bool {
	return is(err, sqlite3.ErrLocked)
}

// IsReadOnly reports whether err means the database cannot be written
// (SQLITE_READONLY).
func IsReadOnly(err error) bool {
	return is(err, sqlite3.ErrReadonly)
}

// IsCorrupted reports whether err means the database file is malformed
// (SQLITE_CORRUPT or SQLITE_NOTADB).
func IsCorrupted(err error) bool {
	return is(err, sqlite3.ErrCorrupt) || is(err, sqlite3.ErrNotADB)
}

func is(err error, code sqlite3.ErrNo) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.Code == code
}

func isExtended(err error, code sqlite3.ErrNoExtended) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.ExtendedCode == code
}
