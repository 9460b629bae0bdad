package attendance

import (
	"github.com/andeshr/hrms-backend-go/internal/domain/schedule"
	"github.com/andeshr/hrms-backend-go/internal/pkg/timeutil"
)

// resolveShiftForEntry picks which of the day's shifts the employee is
// arriving for: the one whose start is closest to the punch. On an exact tie
// the first shift wins. Returns nil when the day has no shifts.
func resolveShiftForEntry(day *schedule.DaySchedule, at timeutil.Clock) *schedule.Shift {
	if day == nil {
		return nil
	}
	return closestShift(day.Shift1, day.Shift2, at, func(s *schedule.Shift) timeutil.Clock {
		return s.Start
	})
}

// resolveShiftForExit picks the shift whose end is closest to the punch.
func resolveShiftForExit(day *schedule.DaySchedule, at timeutil.Clock) *schedule.Shift {
	if day == nil {
		return nil
	}
	return closestShift(day.Shift1, day.Shift2, at, func(s *schedule.Shift) timeutil.Clock {
		return s.End
	})
}

func closestShift(s1, s2 *schedule.Shift, at timeutil.Clock, boundary func(*schedule.Shift) timeutil.Clock) *schedule.Shift {
	switch {
	case s1 == nil && s2 == nil:
		return nil
	case s2 == nil:
		return s1
	case s1 == nil:
		return s2
	}

	d1 := at.DistanceTo(boundary(s1))
	d2 := at.DistanceTo(boundary(s2))
	if d2 < d1 {
		return s2
	}
	return s1
}
