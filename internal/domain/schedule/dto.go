package schedule

import (
	"time"

	"github.com/andeshr/hrms-backend-go/internal/pkg/timeutil"
	"github.com/andeshr/hrms-backend-go/internal/pkg/validator"
)

// UpsertDayRequest replaces the schedule for one (employee, weekday). Empty
// clock strings leave the corresponding shift absent; a day with no shifts at
// all is removed instead of stored.
type UpsertDayRequest struct {
	EmployeeID  string `json:"employee_id"`
	Weekday     int    `json:"weekday"` // 0=Sunday ... 6=Saturday, as time.Weekday
	Shift1Start string `json:"shift1_start"`
	Shift1End   string `json:"shift1_end"`
	Shift2Start string `json:"shift2_start"`
	Shift2End   string `json:"shift2_end"`
}

func (r *UpsertDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Weekday < 0 || r.Weekday > 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "weekday",
			Message: "weekday must be between 0 (Sunday) and 6 (Saturday)",
		})
	}

	clocks := map[string]string{
		"shift1_start": r.Shift1Start,
		"shift1_end":   r.Shift1End,
		"shift2_start": r.Shift2Start,
		"shift2_end":   r.Shift2End,
	}
	for field, value := range clocks {
		if value != "" && !validator.IsValidClock(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "must be HH:MM",
			})
		}
	}
	if len(errs) > 0 {
		return errs
	}

	// A shift needs both ends or neither.
	if (r.Shift1Start == "") != (r.Shift1End == "") {
		errs = append(errs, validator.ValidationError{
			Field:   "shift1_start",
			Message: "shift 1 requires both start and end",
		})
	}
	if (r.Shift2Start == "") != (r.Shift2End == "") {
		errs = append(errs, validator.ValidationError{
			Field:   "shift2_start",
			Message: "shift 2 requires both start and end",
		})
	}
	if r.Shift1Start == "" && r.Shift2Start != "" {
		errs = append(errs, validator.ValidationError{
			Field:   "shift2_start",
			Message: "shift 2 cannot exist without shift 1",
		})
	}
	if len(errs) > 0 {
		return errs
	}

	s1Start, _ := timeutil.ParseClock(r.Shift1Start)
	s1End, _ := timeutil.ParseClock(r.Shift1End)
	s2Start, _ := timeutil.ParseClock(r.Shift2Start)
	s2End, _ := timeutil.ParseClock(r.Shift2End)

	if s1Start.IsPresent() && !s1Start.Before(s1End) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift1_end",
			Message: "shift 1 must end after it starts",
		})
	}
	if s2Start.IsPresent() {
		if !s2Start.Before(s2End) {
			errs = append(errs, validator.ValidationError{
				Field:   "shift2_end",
				Message: "shift 2 must end after it starts",
			})
		}
		if s1End.IsPresent() && s2Start.Before(s1End) {
			errs = append(errs, validator.ValidationError{
				Field:   "shift2_start",
				Message: "shift 2 must start at or after shift 1 ends",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToDaySchedule converts a validated request to the entity form.
func (r *UpsertDayRequest) ToDaySchedule() DaySchedule {
	day := DaySchedule{
		EmployeeID: r.EmployeeID,
		Weekday:    time.Weekday(r.Weekday),
	}

	if r.Shift1Start != "" {
		start, _ := timeutil.ParseClock(r.Shift1Start)
		end, _ := timeutil.ParseClock(r.Shift1End)
		day.Shift1 = &Shift{Start: start, End: end}
	}
	if r.Shift2Start != "" {
		start, _ := timeutil.ParseClock(r.Shift2Start)
		end, _ := timeutil.ParseClock(r.Shift2End)
		day.Shift2 = &Shift{Start: start, End: end}
	}

	return day
}

type DayResponse struct {
	EmployeeID  string `json:"employee_id"`
	Weekday     int    `json:"weekday"`
	Shift1Start string `json:"shift1_start,omitempty"`
	Shift1End   string `json:"shift1_end,omitempty"`
	Shift2Start string `json:"shift2_start,omitempty"`
	Shift2End   string `json:"shift2_end,omitempty"`
}

type WeekResponse struct {
	EmployeeID string        `json:"employee_id"`
	Days       []DayResponse `json:"days"`
}
