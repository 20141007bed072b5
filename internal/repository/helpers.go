package repository

import (
	"database/sql"
	"time"
)

// toEpoch converts t to the epoch-seconds form stored in the database.
func toEpoch(t time.Time) int64 {
	return t.Unix()
}

// fromEpoch converts stored epoch seconds back into a UTC instant.
func fromEpoch(secs int64) time.Time {
	return time.Unix(secs, 0).UTC()
}

// nullableEpoch converts a sql.NullInt64 into a *time.Time.
func nullableEpoch(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := fromEpoch(v.Int64)
	return &t
}

// nullableTimeToEpoch returns nil (SQL NULL) for a nil pointer.
func nullableTimeToEpoch(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return toEpoch(*t)
}

// nullableString converts a sql.NullString into a *string.
func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// nullableStringToValue returns nil (SQL NULL) for a nil pointer.
func nullableStringToValue(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// nullableInt converts a sql.NullInt64 into a *int64.
func nullableInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// nullableIntToValue returns nil (SQL NULL) for a nil pointer.
func nullableIntToValue(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
