package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andeshr/hrms-backend-go/internal/domain/attendance"
	"github.com/andeshr/hrms-backend-go/internal/domain/employee"
	"github.com/andeshr/hrms-backend-go/internal/domain/leave"
	"github.com/andeshr/hrms-backend-go/internal/domain/payroll"
	"github.com/andeshr/hrms-backend-go/internal/pkg/database"
	"github.com/andeshr/hrms-backend-go/internal/pkg/holiday"
	"github.com/andeshr/hrms-backend-go/internal/repository/postgresql"
)

// overtimePerPresentDay estimates overtime hours from attendance until the
// balance ledger is wired into payroll directly.
var overtimePerPresentDay = decimal.NewFromFloat(0.5)

type payrollService struct {
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	calendar       *holiday.Calendar
	location       *time.Location
	now            func() time.Time
	// transact wraps a generation run in one database transaction so a bulk
	// run either lands every payslip or none.
	transact func(ctx context.Context, fn func(context.Context) error) error
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	calendar *holiday.Calendar,
	location *time.Location,
) payroll.PayrollService {
	return &payrollService{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		calendar:       calendar,
		location:       location,
		now:            time.Now,
		transact: func(ctx context.Context, fn func(context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

func (s *payrollService) Generate(ctx context.Context, req *payroll.GenerateRequest) ([]payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	period := payroll.Period{Year: req.Year, Month: time.Month(req.Month)}

	var employees []employee.Employee
	if req.EmployeeID != "" {
		emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return nil, err
		}
		employees = []employee.Employee{*emp}
	} else {
		list, err := s.employeeRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list employees: %w", err)
		}
		employees = list
	}

	businessDays := s.calendar.BusinessDaysInMonth(ctx, period.Month, period.Year)

	from, to := period.Bounds(s.location)
	responses := make([]payroll.PayslipResponse, 0, len(employees))

	err := s.transact(ctx, func(ctx context.Context) error {
		for i := range employees {
			emp := &employees[i]
			if !emp.Active(to) {
				continue
			}

			_, err := s.payrollRepo.GetByPeriod(ctx, emp.ID, period.Year, period.Month)
			switch {
			case err == nil:
				if req.EmployeeID != "" {
					return payroll.ErrPayslipExists
				}
				continue
			case !errors.Is(err, payroll.ErrPayslipNotFound):
				return err
			}

			slip, err := s.buildPayslip(ctx, emp, period, businessDays, from, to)
			if err != nil {
				return fmt.Errorf("payslip for %s: %w", emp.ID, err)
			}
			if err := s.payrollRepo.Create(ctx, slip); err != nil {
				return err
			}
			responses = append(responses, payroll.ToResponse(slip))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return responses, nil
}

func (s *payrollService) buildPayslip(ctx context.Context, emp *employee.Employee, period payroll.Period, businessDays int, from, to time.Time) (*payroll.Payslip, error) {
	presentDays, err := s.attendanceRepo.CountPresentDays(ctx, emp.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("count present days: %w", err)
	}

	// Approved leave is paid, so it counts as worked for proration.
	leaveDays := 0
	for _, leaveType := range []leave.Type{leave.TypeVacation, leave.TypeMedical} {
		days, err := s.leaveRepo.SumDays(ctx, emp.ID, leaveType, leave.StatusApproved, from, to)
		if err != nil {
			return nil, fmt.Errorf("sum leave days: %w", err)
		}
		leaveDays += days
	}

	workedDays := presentDays + leaveDays
	if workedDays > businessDays {
		workedDays = businessDays
	}

	slip := calculate(calculationInput{
		EmployeeID:         emp.ID,
		Year:               period.Year,
		Month:              period.Month,
		BaseSalary:         emp.BaseSalary,
		AFPPlan:            emp.AFPPlan,
		HealthSystem:       emp.HealthSystem,
		MealAllowance:      emp.MealAllowance,
		TransportAllowance: emp.TransportAllowance,
		BusinessDays:       businessDays,
		WorkedDays:         workedDays,
		OvertimeHrs:        overtimePerPresentDay.Mul(decimal.NewFromInt(int64(presentDays))),
	})
	slip.ID = uuid.NewString()

	return &slip, nil
}

func (s *payrollService) ListByPeriod(ctx context.Context, year, month int) ([]payroll.PayslipResponse, error) {
	slips, err := s.payrollRepo.ListByPeriod(ctx, year, time.Month(month))
	if err != nil {
		return nil, err
	}
	return toResponses(slips), nil
}

func (s *payrollService) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayslipResponse, error) {
	slips, err := s.payrollRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(slips), nil
}

func (s *payrollService) UpdateStatus(ctx context.Context, id string, req *payroll.UpdateStatusRequest) (*payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slip, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// A payslip is resolved exactly once; amounts are never recomputed on
	// transition.
	if slip.Status != payroll.StatusPending {
		return nil, payroll.ErrPayslipNotPending
	}

	status := payroll.Status(req.Status)
	if err := s.payrollRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	slip.Status = status

	resp := payroll.ToResponse(slip)
	return &resp, nil
}

func (s *payrollService) Delete(ctx context.Context, id string) error {
	if _, err := s.payrollRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.payrollRepo.Delete(ctx, id)
}

func toResponses(slips []payroll.Payslip) []payroll.PayslipResponse {
	responses := make([]payroll.PayslipResponse, 0, len(slips))
	for i := range slips {
		responses = append(responses, payroll.ToResponse(&slips[i]))
	}
	return responses
}
