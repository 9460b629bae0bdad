package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andeshr/hrms-backend-go/internal/domain/attendance"
	"github.com/andeshr/hrms-backend-go/internal/domain/employee"
	"github.com/andeshr/hrms-backend-go/internal/domain/leave"
	"github.com/andeshr/hrms-backend-go/internal/domain/payroll"
	"github.com/andeshr/hrms-backend-go/internal/pkg/holiday"
)

type fakePayrollRepo struct {
	slips map[string]*payroll.Payslip
}

func periodKey(employeeID string, year int, month time.Month) string {
	return employeeID + "|" + time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

func (f *fakePayrollRepo) Create(_ context.Context, slip *payroll.Payslip) error {
	key := periodKey(slip.EmployeeID, slip.Year, slip.Month)
	if _, ok := f.slips[key]; ok {
		return payroll.ErrPayslipExists
	}
	stored := *slip
	f.slips[key] = &stored
	return nil
}

func (f *fakePayrollRepo) GetByID(_ context.Context, id string) (*payroll.Payslip, error) {
	for _, slip := range f.slips {
		if slip.ID == id && slip.Status != payroll.StatusDeleted {
			copy := *slip
			return &copy, nil
		}
	}
	return nil, payroll.ErrPayslipNotFound
}

func (f *fakePayrollRepo) GetByPeriod(_ context.Context, employeeID string, year int, month time.Month) (*payroll.Payslip, error) {
	slip, ok := f.slips[periodKey(employeeID, year, month)]
	if !ok || slip.Status == payroll.StatusDeleted {
		return nil, payroll.ErrPayslipNotFound
	}
	copy := *slip
	return &copy, nil
}

func (f *fakePayrollRepo) ListByPeriod(_ context.Context, year int, month time.Month) ([]payroll.Payslip, error) {
	var out []payroll.Payslip
	for _, slip := range f.slips {
		if slip.Year == year && slip.Month == month && slip.Status != payroll.StatusDeleted {
			out = append(out, *slip)
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) ListByEmployee(_ context.Context, employeeID string) ([]payroll.Payslip, error) {
	var out []payroll.Payslip
	for _, slip := range f.slips {
		if slip.EmployeeID == employeeID && slip.Status != payroll.StatusDeleted {
			out = append(out, *slip)
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) UpdateStatus(_ context.Context, id string, status payroll.Status) error {
	for _, slip := range f.slips {
		if slip.ID == id && slip.Status != payroll.StatusDeleted {
			slip.Status = status
			return nil
		}
	}
	return payroll.ErrPayslipNotFound
}

func (f *fakePayrollRepo) Delete(_ context.Context, id string) error {
	for _, slip := range f.slips {
		if slip.ID == id && slip.Status != payroll.StatusDeleted {
			slip.Status = payroll.StatusDeleted
			return nil
		}
	}
	return payroll.ErrPayslipNotFound
}

type stubAttendanceRepo struct {
	presentDays int
}

func (s *stubAttendanceRepo) CreateOpen(context.Context, *attendance.Record) error { return nil }
func (s *stubAttendanceRepo) GetOpen(context.Context, string, time.Time) (*attendance.Record, error) {
	return nil, attendance.ErrNoActiveCheckIn
}
func (s *stubAttendanceRepo) GetByID(context.Context, string) (*attendance.Record, error) {
	return nil, attendance.ErrRecordNotFound
}
func (s *stubAttendanceRepo) Close(context.Context, *attendance.Record) error  { return nil }
func (s *stubAttendanceRepo) Update(context.Context, *attendance.Record) error { return nil }
func (s *stubAttendanceRepo) ListByEmployee(context.Context, string, time.Time, time.Time) ([]attendance.Record, error) {
	return nil, nil
}
func (s *stubAttendanceRepo) ListByDateRange(context.Context, time.Time, time.Time) ([]attendance.Record, error) {
	return nil, nil
}
func (s *stubAttendanceRepo) SumBalance(context.Context, string, time.Time, time.Time) (int, error) {
	return 0, nil
}
func (s *stubAttendanceRepo) CountPresentDays(context.Context, string, time.Time, time.Time) (int, error) {
	return s.presentDays, nil
}

type stubLeaveRepo struct {
	approvedVacation int
}

func (s *stubLeaveRepo) Create(context.Context, *leave.Request) error { return nil }
func (s *stubLeaveRepo) GetByID(context.Context, string) (*leave.Request, error) {
	return nil, leave.ErrRequestNotFound
}
func (s *stubLeaveRepo) ListByEmployee(context.Context, string) ([]leave.Request, error) {
	return nil, nil
}
func (s *stubLeaveRepo) ListByStatus(context.Context, leave.Status) ([]leave.Request, error) {
	return nil, nil
}
func (s *stubLeaveRepo) UpdateStatus(context.Context, string, leave.Status) error { return nil }
func (s *stubLeaveRepo) SumDays(_ context.Context, _ string, leaveType leave.Type, status leave.Status, _, _ time.Time) (int, error) {
	if leaveType == leave.TypeVacation && status == leave.StatusApproved {
		return s.approvedVacation, nil
	}
	return 0, nil
}
func (s *stubLeaveRepo) HasOverlap(context.Context, string, time.Time, time.Time) (bool, error) {
	return false, nil
}

type stubEmployeeRepo struct {
	employees []employee.Employee
}

func (s *stubEmployeeRepo) Create(context.Context, *employee.Employee) error { return nil }
func (s *stubEmployeeRepo) GetByID(_ context.Context, id string) (*employee.Employee, error) {
	for i := range s.employees {
		if s.employees[i].ID == id {
			return &s.employees[i], nil
		}
	}
	return nil, employee.ErrEmployeeNotFound
}
func (s *stubEmployeeRepo) GetByEmail(context.Context, string) (*employee.Employee, error) {
	return nil, employee.ErrEmployeeNotFound
}
func (s *stubEmployeeRepo) List(context.Context) ([]employee.Employee, error) {
	return s.employees, nil
}
func (s *stubEmployeeRepo) Update(context.Context, *employee.Employee) error { return nil }
func (s *stubEmployeeRepo) Delete(context.Context, string) error             { return nil }

type emptyHolidays struct{}

func (emptyHolidays) Fetch(context.Context, int) ([]holiday.Holiday, error) { return nil, nil }

func testEmployee(id string) employee.Employee {
	return employee.Employee{
		ID:           id,
		Name:         "Ana Rojas",
		BaseSalary:   decimal.NewFromInt(800000),
		AFPPlan:      "Modelo",
		HealthSystem: "FONASA",
		JoinDate:     time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newTestPayrollService(repo *fakePayrollRepo, employees []employee.Employee, presentDays, approvedVacation int) *payrollService {
	return &payrollService{
		payrollRepo:    repo,
		employeeRepo:   &stubEmployeeRepo{employees: employees},
		attendanceRepo: &stubAttendanceRepo{presentDays: presentDays},
		leaveRepo:      &stubLeaveRepo{approvedVacation: approvedVacation},
		calendar:       holiday.NewCalendar(emptyHolidays{}),
		location:       time.UTC,
		now:            time.Now,
		transact: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

func TestGenerateFullMonth(t *testing.T) {
	repo := &fakePayrollRepo{slips: make(map[string]*payroll.Payslip)}
	// June 2025 has 21 business days with no holidays loaded.
	svc := newTestPayrollService(repo, []employee.Employee{testEmployee("18532664-0")}, 21, 0)

	results, err := svc.Generate(context.Background(), &payroll.GenerateRequest{Year: 2025, Month: 6})
	require.NoError(t, err)
	require.Len(t, results, 1)

	slip := results[0]
	assert.Equal(t, 21, slip.WorkedDays)
	assert.Equal(t, 0, slip.AbsentDays)
	// 800000 base + 200000 gratification + 78750 overtime pay.
	assert.Equal(t, "1078750", slip.TaxableIncome)
	assert.Equal(t, "10.5", slip.OvertimeHrs)
	assert.Equal(t, string(payroll.StatusPending), slip.Status)
}

func TestGenerateCountsApprovedLeaveAsWorked(t *testing.T) {
	repo := &fakePayrollRepo{slips: make(map[string]*payroll.Payslip)}
	svc := newTestPayrollService(repo, []employee.Employee{testEmployee("18532664-0")}, 16, 5)

	results, err := svc.Generate(context.Background(), &payroll.GenerateRequest{Year: 2025, Month: 6})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, 21, results[0].WorkedDays)
	assert.Equal(t, 0, results[0].AbsentDays)
}

func TestGenerateDuplicatePeriod(t *testing.T) {
	repo := &fakePayrollRepo{slips: make(map[string]*payroll.Payslip)}
	svc := newTestPayrollService(repo, []employee.Employee{testEmployee("18532664-0")}, 21, 0)

	_, err := svc.Generate(context.Background(), &payroll.GenerateRequest{Year: 2025, Month: 6})
	require.NoError(t, err)

	// Bulk generation skips existing periods silently.
	results, err := svc.Generate(context.Background(), &payroll.GenerateRequest{Year: 2025, Month: 6})
	require.NoError(t, err)
	assert.Empty(t, results)

	// Targeting the employee directly reports the conflict.
	_, err = svc.Generate(context.Background(), &payroll.GenerateRequest{
		Year: 2025, Month: 6, EmployeeID: "18532664-0",
	})
	assert.ErrorIs(t, err, payroll.ErrPayslipExists)
}

func TestGenerateSkipsTerminated(t *testing.T) {
	terminated := testEmployee("12345678-5")
	end := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	terminated.TerminationDate = &end

	repo := &fakePayrollRepo{slips: make(map[string]*payroll.Payslip)}
	svc := newTestPayrollService(repo, []employee.Employee{testEmployee("18532664-0"), terminated}, 21, 0)

	results, err := svc.Generate(context.Background(), &payroll.GenerateRequest{Year: 2025, Month: 6})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "18532664-0", results[0].EmployeeID)
}

func TestUpdateStatusResolvesOnce(t *testing.T) {
	repo := &fakePayrollRepo{slips: make(map[string]*payroll.Payslip)}
	svc := newTestPayrollService(repo, []employee.Employee{testEmployee("18532664-0")}, 21, 0)

	results, err := svc.Generate(context.Background(), &payroll.GenerateRequest{Year: 2025, Month: 6})
	require.NoError(t, err)
	id := results[0].ID

	approved, err := svc.UpdateStatus(context.Background(), id, &payroll.UpdateStatusRequest{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, string(payroll.StatusApproved), approved.Status)

	_, err = svc.UpdateStatus(context.Background(), id, &payroll.UpdateStatusRequest{Status: "rejected"})
	assert.ErrorIs(t, err, payroll.ErrPayslipNotPending)
}

func TestDeleteHidesPayslip(t *testing.T) {
	repo := &fakePayrollRepo{slips: make(map[string]*payroll.Payslip)}
	svc := newTestPayrollService(repo, []employee.Employee{testEmployee("18532664-0")}, 21, 0)

	results, err := svc.Generate(context.Background(), &payroll.GenerateRequest{Year: 2025, Month: 6})
	require.NoError(t, err)
	id := results[0].ID

	require.NoError(t, svc.Delete(context.Background(), id))

	listed, err := svc.ListByPeriod(context.Background(), 2025, 6)
	require.NoError(t, err)
	assert.Empty(t, listed)

	err = svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, payroll.ErrPayslipNotFound)
}
