package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andeshr/hrms-backend-go/internal/domain/attendance"
	"github.com/andeshr/hrms-backend-go/internal/domain/schedule"
	"github.com/andeshr/hrms-backend-go/internal/pkg/holiday"
	"github.com/andeshr/hrms-backend-go/internal/pkg/timeutil"
)

type attendanceService struct {
	attendanceRepo attendance.AttendanceRepository
	scheduleRepo   schedule.ScheduleRepository
	calendar       *holiday.Calendar
	location       *time.Location
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.ScheduleRepository,
	calendar *holiday.Calendar,
	location *time.Location,
) attendance.AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
		calendar:       calendar,
		location:       location,
		now:            time.Now,
	}
}

func (s *attendanceService) CheckIn(ctx context.Context, employeeID string, req *attendance.CheckInRequest) (*attendance.RecordResponse, error) {
	now := s.now().In(s.location)
	date := midnight(now)
	clock := timeutil.FromTime(now)

	record := &attendance.Record{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       date,
		CheckIn:    clock,
	}

	day, err := s.scheduleRepo.GetDay(ctx, employeeID, now.Weekday())
	if err != nil && !errors.Is(err, schedule.ErrScheduleNotFound) {
		return nil, fmt.Errorf("load schedule: %w", err)
	}

	shift := resolveShiftForEntry(day, clock)
	if shift == nil {
		if !req.Authorized {
			return nil, attendance.ErrNoSchedule
		}
		// Approved work outside the schedule: the whole session becomes
		// overtime pending review, settled at check-out.
		record.Observation = attendance.ObsOvertimePending
		record.Authorized = true
	} else {
		record.ExpectedIn = shift.Start
		record.ExpectedOut = shift.End

		diff := clock.Sub(shift.Start)
		record.BalanceMinutes = -diff
		switch {
		case diff < 0:
			record.Observation = attendance.ObsOnTimeCredit
		case diff == 0:
			// On the dot: nothing to note.
		case diff <= attendance.LateThresholdMinutes:
			record.Observation = attendance.ObsLate
		default:
			record.Observation = attendance.ObsLateDiscount
		}

		// Working a holiday excuses a late arrival; it does not erase an
		// early-arrival credit.
		if diff > 0 && s.calendar.IsHoliday(ctx, date) {
			record.Observation = attendance.ObsWorkedHoliday
		}
	}

	if err := s.attendanceRepo.CreateOpen(ctx, record); err != nil {
		return nil, err
	}

	resp := attendance.ToResponse(record)
	return &resp, nil
}

func (s *attendanceService) CheckOut(ctx context.Context, employeeID string) (*attendance.RecordResponse, error) {
	now := s.now().In(s.location)
	date := midnight(now)
	clock := timeutil.FromTime(now)

	record, err := s.attendanceRepo.GetOpen(ctx, employeeID, date)
	if err != nil {
		return nil, err
	}
	record.CheckOut = clock

	if record.Authorized {
		// Out-of-schedule session: everything worked counts toward the
		// balance, pending authorization.
		record.BalanceMinutes = clock.Sub(record.CheckIn)
	} else {
		expectedOut := record.ExpectedOut
		if day, err := s.scheduleRepo.GetDay(ctx, employeeID, now.Weekday()); err == nil {
			if shift := resolveShiftForExit(day, clock); shift != nil {
				expectedOut = shift.End
				record.ExpectedOut = shift.End
			}
		}

		diff := clock.Sub(expectedOut)
		record.BalanceMinutes += diff

		var exitObs string
		switch {
		case diff < 0:
			exitObs = attendance.ObsEarlyLeave
		case diff == 0:
			// Left on the dot: nothing to append.
		case diff <= attendance.LateThresholdMinutes:
			exitObs = attendance.ObsOnTimeCredit
		default:
			exitObs = attendance.ObsOvertime
		}
		if exitObs != "" {
			if record.Observation != "" {
				record.Observation += ", "
			}
			record.Observation += exitObs
		}
	}

	if err := s.attendanceRepo.Close(ctx, record); err != nil {
		return nil, err
	}

	resp := attendance.ToResponse(record)
	return &resp, nil
}

func (s *attendanceService) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.RecordResponse, error) {
	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

func (s *attendanceService) ListAll(ctx context.Context, from, to time.Time) ([]attendance.RecordResponse, error) {
	records, err := s.attendanceRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

func (s *attendanceService) Update(ctx context.Context, id string, req *attendance.UpdateRecordRequest) (*attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CheckIn != nil {
		clock, err := timeutil.ParseClock(*req.CheckIn)
		if err != nil {
			return nil, err
		}
		record.CheckIn = clock
	}
	if req.CheckOut != nil {
		clock, err := timeutil.ParseClock(*req.CheckOut)
		if err != nil {
			return nil, err
		}
		record.CheckOut = clock
	}
	if req.Observation != nil {
		record.Observation = *req.Observation
	}
	if req.BalanceMinutes != nil {
		record.BalanceMinutes = *req.BalanceMinutes
	}

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	resp := attendance.ToResponse(record)
	return &resp, nil
}

func (s *attendanceService) Balance(ctx context.Context, employeeID string, from, to time.Time) (int, error) {
	return s.attendanceRepo.SumBalance(ctx, employeeID, from, to)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func toResponses(records []attendance.Record) []attendance.RecordResponse {
	responses := make([]attendance.RecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, attendance.ToResponse(&records[i]))
	}
	return responses
}
