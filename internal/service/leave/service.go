package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andeshr/hrms-backend-go/internal/domain/employee"
	"github.com/andeshr/hrms-backend-go/internal/domain/leave"
	"github.com/andeshr/hrms-backend-go/internal/pkg/holiday"
	"github.com/andeshr/hrms-backend-go/internal/pkg/timeutil"
)

type leaveService struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
	calendar     *holiday.Calendar
	location     *time.Location
	// allowance is the annual vacation entitlement in business days.
	allowance int
	now       func() time.Time
}

func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
	calendar *holiday.Calendar,
	location *time.Location,
	allowance int,
) leave.LeaveService {
	return &leaveService{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		calendar:     calendar,
		location:     location,
		allowance:    allowance,
		now:          time.Now,
	}
}

func (s *leaveService) Create(ctx context.Context, employeeID string, req *leave.CreateRequestRequest) (*leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	start, _ := time.ParseInLocation("2006-01-02", req.StartDate, s.location)
	end, _ := time.ParseInLocation("2006-01-02", req.EndDate, s.location)

	overlap, err := s.leaveRepo.HasOverlap(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("check overlap: %w", err)
	}
	if overlap {
		return nil, leave.ErrOverlappingRequest
	}

	days := businessDays(ctx, s.calendar, start, end)

	leaveType := leave.Type(req.Type)
	if leaveType == leave.TypeVacation {
		balance, err := s.balanceFor(ctx, employeeID, start.Year())
		if err != nil {
			return nil, err
		}
		if days > balance.Available {
			return nil, leave.ErrInsufficientBalance
		}
	}

	request := &leave.Request{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Type:       leaveType,
		StartDate:  start,
		EndDate:    end,
		Days:       days,
		Status:     leave.StatusPending,
		Reason:     req.Reason,
	}
	if req.StartTime != "" {
		request.StartTime, _ = timeutil.ParseClock(req.StartTime)
		request.EndTime, _ = timeutil.ParseClock(req.EndTime)
	}
	if err := s.leaveRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	resp := leave.ToResponse(request)
	return &resp, nil
}

func (s *leaveService) ListByEmployee(ctx context.Context, employeeID string) ([]leave.RequestResponse, error) {
	requests, err := s.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

func (s *leaveService) ListPending(ctx context.Context) ([]leave.RequestResponse, error) {
	requests, err := s.leaveRepo.ListByStatus(ctx, leave.StatusPending)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

func (s *leaveService) UpdateStatus(ctx context.Context, id string, req *leave.UpdateStatusRequest) (*leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status != leave.StatusPending {
		return nil, leave.ErrRequestNotPending
	}

	status := leave.Status(req.Status)
	if err := s.leaveRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	request.Status = status

	resp := leave.ToResponse(request)
	return &resp, nil
}

func (s *leaveService) VacationBalance(ctx context.Context, employeeID string, year int) (*leave.VacationBalanceResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	if year == 0 {
		year = s.now().In(s.location).Year()
	}
	return s.balanceFor(ctx, employeeID, year)
}

func (s *leaveService) balanceFor(ctx context.Context, employeeID string, year int) (*leave.VacationBalanceResponse, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, s.location)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, s.location)

	used, err := s.leaveRepo.SumDays(ctx, employeeID, leave.TypeVacation, leave.StatusApproved, from, to)
	if err != nil {
		return nil, fmt.Errorf("sum approved vacation days: %w", err)
	}
	pending, err := s.leaveRepo.SumDays(ctx, employeeID, leave.TypeVacation, leave.StatusPending, from, to)
	if err != nil {
		return nil, fmt.Errorf("sum pending vacation days: %w", err)
	}

	return &leave.VacationBalanceResponse{
		EmployeeID: employeeID,
		Year:       year,
		Allowance:  s.allowance,
		Used:       used,
		Pending:    pending,
		Available:  s.allowance - used - pending,
	}, nil
}

func toResponses(requests []leave.Request) []leave.RequestResponse {
	responses := make([]leave.RequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, leave.ToResponse(&requests[i]))
	}
	return responses
}
