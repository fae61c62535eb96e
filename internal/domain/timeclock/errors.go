package timeclock

import "errors"

// Time-clock domain errors
var (
	ErrPunchNotFound = errors.New("punch not found")
)
