package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in/check-out state machine
	ErrAlreadyCheckedIn = errors.New("employee already has an open check-in")
	ErrNothingToClose   = errors.New("employee has no open check-in to close")

	ErrPunchNotFound = errors.New("attendance record not found")
)
