package attendance

import "errors"

// Attendance domain errors
var (
	// Clock event errors
	ErrAlreadyCheckedIn  = errors.New("employee has already checked in today")
	ErrNotCheckedIn      = errors.New("employee has not checked in today")
	ErrAlreadyCheckedOut = errors.New("employee has already checked out today")

	// General errors
	ErrRecordNotFound       = errors.New("attendance record not found")
	ErrTimeOutBeforeTimeIn  = errors.New("time out cannot be before time in")
	ErrTimeOutWithoutTimeIn = errors.New("time out cannot be set without time in")
)
