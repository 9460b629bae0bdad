package schedule

import (
	"time"

	"github.com/andeshr/hrms-backend-go/internal/pkg/timeutil"
)

// Shift is one contiguous block of a workday.
type Shift struct {
	Start timeutil.Clock
	End   timeutil.Clock
}

// DaySchedule is the expected working pattern for one employee on one
// weekday: up to two shifts (a day split by a lunch break has two). No row
// for a weekday means the employee is not scheduled that day, which the
// attendance engine treats as its own state rather than an empty schedule.
type DaySchedule struct {
	EmployeeID string
	Weekday    time.Weekday
	Shift1     *Shift
	Shift2     *Shift
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasShifts reports whether at least one shift is configured.
func (d DaySchedule) HasShifts() bool {
	return d.Shift1 != nil || d.Shift2 != nil
}
