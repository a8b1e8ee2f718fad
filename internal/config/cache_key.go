package config

import "fmt"

// CacheKey builds every redis key used by the application. Keeping the
// formats in one place avoids drift between writers and invalidators.
var CacheKey = &cacheKeys{}

type cacheKeys struct{}

// UserSessionKey returns the key holding the active JWT jti for a user.
func (cacheKeys) UserSessionKey(userID int) string {
	return fmt.Sprintf("session:%d", userID)
}

// TimetableByClassKey returns the key for a cached class timetable
// projection. Year and term may be empty (unfiltered lookup).
func (cacheKeys) TimetableByClassKey(adminID, classID int, academicYear, term string) string {
	return fmt.Sprintf("timetable:%d:class:%d:%s:%s", adminID, classID, academicYear, term)
}

// TimetableByClassPattern matches every cached projection for one class,
// regardless of year/term filters. Used for invalidation on compose,
// delete and toggle.
func (cacheKeys) TimetableByClassPattern(adminID, classID int) string {
	return fmt.Sprintf("timetable:%d:class:%d:*", adminID, classID)
}
