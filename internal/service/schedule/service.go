package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/andeshr/hrms-backend-go/internal/domain/schedule"
)

type scheduleService struct {
	scheduleRepo schedule.ScheduleRepository
}

func NewScheduleService(scheduleRepo schedule.ScheduleRepository) schedule.ScheduleService {
	return &scheduleService{scheduleRepo: scheduleRepo}
}

func (s *scheduleService) GetWeek(ctx context.Context, employeeID string) (*schedule.WeekResponse, error) {
	days, err := s.scheduleRepo.GetWeek(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("load week schedule: %w", err)
	}

	resp := &schedule.WeekResponse{
		EmployeeID: employeeID,
		Days:       make([]schedule.DayResponse, 0, len(days)),
	}
	for i := range days {
		resp.Days = append(resp.Days, toDayResponse(&days[i]))
	}
	return resp, nil
}

func (s *scheduleService) UpsertDay(ctx context.Context, req *schedule.UpsertDayRequest) (*schedule.DayResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	day := req.ToDaySchedule()
	if !day.HasShifts() {
		// Storing an empty day is the same as removing it.
		if err := s.scheduleRepo.DeleteDay(ctx, day.EmployeeID, day.Weekday); err != nil {
			return nil, err
		}
		resp := toDayResponse(&day)
		return &resp, nil
	}

	if err := s.scheduleRepo.Upsert(ctx, &day); err != nil {
		return nil, err
	}

	resp := toDayResponse(&day)
	return &resp, nil
}

func (s *scheduleService) DeleteDay(ctx context.Context, employeeID string, weekday int) error {
	if weekday < 0 || weekday > 6 {
		return schedule.ErrScheduleNotFound
	}
	return s.scheduleRepo.DeleteDay(ctx, employeeID, time.Weekday(weekday))
}

func toDayResponse(day *schedule.DaySchedule) schedule.DayResponse {
	resp := schedule.DayResponse{
		EmployeeID: day.EmployeeID,
		Weekday:    int(day.Weekday),
	}
	if day.Shift1 != nil {
		resp.Shift1Start = day.Shift1.Start.String()
		resp.Shift1End = day.Shift1.End.String()
	}
	if day.Shift2 != nil {
		resp.Shift2Start = day.Shift2.Start.String()
		resp.Shift2End = day.Shift2.End.String()
	}
	return resp
}
