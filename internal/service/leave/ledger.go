package leave

import (
	"context"
	"time"

	"github.com/andeshr/hrms-backend-go/internal/pkg/holiday"
)

// businessDays counts the working days in [start, end] inclusive, skipping
// weekends and holidays.
func businessDays(ctx context.Context, calendar *holiday.Calendar, start, end time.Time) int {
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		if calendar.IsHoliday(ctx, d) {
			continue
		}
		days++
	}
	return days
}
