package attendance

import "errors"

var (
	ErrAlreadyCheckedIn = errors.New("attendance: already checked in today")
	ErrNoActiveCheckIn  = errors.New("attendance: no open check-in to close")
	ErrNoSchedule       = errors.New("attendance: no schedule for this day")
	ErrRecordNotFound   = errors.New("attendance: record not found")
)
