package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andeshr/hrms-backend-go/internal/domain/employee"
	"github.com/andeshr/hrms-backend-go/internal/domain/leave"
	"github.com/andeshr/hrms-backend-go/internal/pkg/holiday"
)

type fakeLeaveRepo struct {
	requests map[string]*leave.Request
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]*leave.Request)}
}

func (f *fakeLeaveRepo) Create(_ context.Context, req *leave.Request) error {
	stored := *req
	f.requests[req.ID] = &stored
	return nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (*leave.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, leave.ErrRequestNotFound
	}
	copy := *req
	return &copy, nil
}

func (f *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeID string) ([]leave.Request, error) {
	var out []leave.Request
	for _, req := range f.requests {
		if req.EmployeeID == employeeID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByStatus(_ context.Context, status leave.Status) ([]leave.Request, error) {
	var out []leave.Request
	for _, req := range f.requests {
		if req.Status == status {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, id string, status leave.Status) error {
	req, ok := f.requests[id]
	if !ok {
		return leave.ErrRequestNotFound
	}
	req.Status = status
	return nil
}

func (f *fakeLeaveRepo) SumDays(_ context.Context, employeeID string, leaveType leave.Type, status leave.Status, from, to time.Time) (int, error) {
	total := 0
	for _, req := range f.requests {
		if req.EmployeeID == employeeID && req.Type == leaveType && req.Status == status &&
			!req.StartDate.Before(from) && !req.StartDate.After(to) {
			total += req.Days
		}
	}
	return total, nil
}

func (f *fakeLeaveRepo) HasOverlap(_ context.Context, employeeID string, start, end time.Time) (bool, error) {
	for _, req := range f.requests {
		if req.EmployeeID != employeeID || req.Status == leave.StatusRejected {
			continue
		}
		if !req.StartDate.After(end) && !req.EndDate.Before(start) {
			return true, nil
		}
	}
	return false, nil
}

type fakeEmployeeRepo struct {
	employees map[string]*employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp *employee.Employee) error {
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (*employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return nil, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, *emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp *employee.Employee) error {
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

type staticHolidays struct {
	dates []string
}

func (s *staticHolidays) Fetch(context.Context, int) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, d := range s.dates {
		out = append(out, holiday.Holiday{Name: "Feriado", Date: d})
	}
	return out, nil
}

func newTestLeaveService(repo *fakeLeaveRepo, holidays []string) *leaveService {
	return &leaveService{
		leaveRepo: repo,
		employeeRepo: &fakeEmployeeRepo{employees: map[string]*employee.Employee{
			"18532664-0": {ID: "18532664-0", Name: "Ana Rojas"},
		}},
		calendar:  holiday.NewCalendar(&staticHolidays{dates: holidays}),
		location:  time.UTC,
		allowance: 15,
		now:       func() time.Time { return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestCreateCountsBusinessDays(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		holidays []string
		days     int
	}{
		{"full work week", "2025-06-09", "2025-06-13", nil, 5},
		{"week with holiday", "2025-06-09", "2025-06-13", []string{"2025-06-11"}, 4},
		{"spanning weekend", "2025-06-06", "2025-06-09", nil, 2},
		{"single day", "2025-06-10", "2025-06-10", nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestLeaveService(newFakeLeaveRepo(), tt.holidays)

			result, err := svc.Create(context.Background(), "18532664-0", &leave.CreateRequestRequest{
				Type:      "vacation",
				StartDate: tt.start,
				EndDate:   tt.end,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.days, result.Days)
			assert.Equal(t, string(leave.StatusPending), result.Status)
		})
	}
}

func TestCreateHourlyRequest(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestLeaveService(repo, nil)

	result, err := svc.Create(context.Background(), "18532664-0", &leave.CreateRequestRequest{
		Type:      "personal",
		StartDate: "2025-06-10",
		EndDate:   "2025-06-10",
		StartTime: "10:00",
		EndTime:   "12:30",
	})
	require.NoError(t, err)

	assert.Equal(t, "10:00", result.StartTime)
	assert.Equal(t, "12:30", result.EndTime)
	assert.Equal(t, 1, result.Days)
}

func TestCreateHourlyRequestValidation(t *testing.T) {
	svc := newTestLeaveService(newFakeLeaveRepo(), nil)

	// A start without an end is rejected.
	_, err := svc.Create(context.Background(), "18532664-0", &leave.CreateRequestRequest{
		Type:      "personal",
		StartDate: "2025-06-10",
		EndDate:   "2025-06-10",
		StartTime: "10:00",
	})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), "18532664-0", &leave.CreateRequestRequest{
		Type:      "personal",
		StartDate: "2025-06-10",
		EndDate:   "2025-06-10",
		StartTime: "10:00",
		EndTime:   "25:99",
	})
	assert.Error(t, err)
}

func TestCreateRejectsOverdraft(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestLeaveService(repo, nil)

	// Three full weeks is 15 business days, draining the allowance.
	_, err := svc.Create(context.Background(), "18532664-0", &leave.CreateRequestRequest{
		Type:      "vacation",
		StartDate: "2025-06-02",
		EndDate:   "2025-06-20",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "18532664-0", &leave.CreateRequestRequest{
		Type:      "vacation",
		StartDate: "2025-07-07",
		EndDate:   "2025-07-07",
	})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
}

func TestCreateMedicalIgnoresVacationBalance(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestLeaveService(repo, nil)

	_, err := svc.Create(context.Background(), "18532664-0", &leave.CreateRequestRequest{
		Type:      "vacation",
		StartDate: "2025-06-02",
		EndDate:   "2025-06-20",
	})
	require.NoError(t, err)

	// Medical leave is not drawn from the vacation allowance.
	_, err = svc.Create(context.Background(), "18532664-0", &leave.CreateRequestRequest{
		Type:      "medical",
		StartDate: "2025-07-07",
		EndDate:   "2025-07-11",
	})
	assert.NoError(t, err)
}

func TestCreateRejectsOverlap(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestLeaveService(repo, nil)

	_, err := svc.Create(context.Background(), "18532664-0", &leave.CreateRequestRequest{
		Type:      "vacation",
		StartDate: "2025-06-09",
		EndDate:   "2025-06-13",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "18532664-0", &leave.CreateRequestRequest{
		Type:      "personal",
		StartDate: "2025-06-12",
		EndDate:   "2025-06-16",
	})
	assert.ErrorIs(t, err, leave.ErrOverlappingRequest)
}

func TestVacationBalanceLedger(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestLeaveService(repo, nil)

	first, err := svc.Create(context.Background(), "18532664-0", &leave.CreateRequestRequest{
		Type:      "vacation",
		StartDate: "2025-06-09",
		EndDate:   "2025-06-13",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "18532664-0", &leave.CreateRequestRequest{
		Type:      "vacation",
		StartDate: "2025-07-07",
		EndDate:   "2025-07-09",
	})
	require.NoError(t, err)

	// Both pending: 15 - 0 used - 8 pending.
	balance, err := svc.VacationBalance(context.Background(), "18532664-0", 2025)
	require.NoError(t, err)
	assert.Equal(t, 0, balance.Used)
	assert.Equal(t, 8, balance.Pending)
	assert.Equal(t, 7, balance.Available)

	_, err = svc.UpdateStatus(context.Background(), first.ID, &leave.UpdateStatusRequest{Status: "approved"})
	require.NoError(t, err)

	balance, err = svc.VacationBalance(context.Background(), "18532664-0", 2025)
	require.NoError(t, err)
	assert.Equal(t, 5, balance.Used)
	assert.Equal(t, 3, balance.Pending)
	assert.Equal(t, 7, balance.Available)
}

func TestUpdateStatusOnlyPending(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestLeaveService(repo, nil)

	result, err := svc.Create(context.Background(), "18532664-0", &leave.CreateRequestRequest{
		Type:      "vacation",
		StartDate: "2025-06-09",
		EndDate:   "2025-06-10",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), result.ID, &leave.UpdateStatusRequest{Status: "rejected"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), result.ID, &leave.UpdateStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, leave.ErrRequestNotPending)
}
