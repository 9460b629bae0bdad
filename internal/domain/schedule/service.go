package schedule

import "context"

type ScheduleService interface {
	GetWeek(ctx context.Context, employeeID string) (*WeekResponse, error)
	UpsertDay(ctx context.Context, req *UpsertDayRequest) (*DayResponse, error)
	DeleteDay(ctx context.Context, employeeID string, weekday int) error
}
