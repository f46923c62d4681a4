// Package store is the persistence layer. Functions operate on a *sql.DB,
// return (nil, nil) for missing rows, and wrap driver errors with context.
// Authorization and input validation live one level up, in package access.
package store

import (
	"errors"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// utc normalizes a timestamp read back from storage. SQLite keeps no timezone
// info; all values are written in UTC, so bare timestamps are UTC.
func utc(t time.Time) time.Time {
	return t.UTC()
}

// utcPtr is utc for nullable timestamp columns.
func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// IsConstraintViolation reports whether err is a SQLite constraint failure
// (unique, foreign key, not-null). Callers reclassify these as bad input
// rather than server faults.
func IsConstraintViolation(err error) bool {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		return serr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}
