package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/andeshr/hrms-backend-go/internal/domain/payroll"
	"github.com/andeshr/hrms-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payslipColumns = `
	id, employee_id, year, month, worked_days, absent_days, overtime_hours,
	base_salary, gratification, overtime_pay, taxable_income,
	meal_allowance, transport_allowance, non_taxable_income,
	afp_plan, afp_amount, health_system, health_amount, ui_amount, tax_amount,
	net_pay, status, created_at, updated_at`

func (r *payrollRepository) Create(ctx context.Context, slip *payroll.Payslip) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (
			id, employee_id, year, month, worked_days, absent_days, overtime_hours,
			base_salary, gratification, overtime_pay, taxable_income,
			meal_allowance, transport_allowance, non_taxable_income,
			afp_plan, afp_amount, health_system, health_amount, ui_amount, tax_amount,
			net_pay, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		slip.ID, slip.EmployeeID, slip.Year, int(slip.Month),
		slip.WorkedDays, slip.AbsentDays, slip.OvertimeHrs,
		slip.BaseSalary, slip.Gratification, slip.OvertimePay, slip.TaxableIncome,
		slip.MealAllowance, slip.TransportAllowance, slip.NonTaxableIncome,
		slip.AFPPlan, slip.AFPAmount, slip.HealthSystem, slip.HealthAmount, slip.UIAmount, slip.TaxAmount,
		slip.NetPay, string(slip.Status),
	).Scan(&slip.CreatedAt, &slip.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return payroll.ErrPayslipExists
		}
		return fmt.Errorf("create payslip: %w", err)
	}
	return nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (*payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + payslipColumns + ` FROM payslips WHERE id = $1 AND status <> 'deleted'`
	return r.scanOne(q.QueryRow(ctx, query, id))
}

func (r *payrollRepository) GetByPeriod(ctx context.Context, employeeID string, year int, month time.Month) (*payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + payslipColumns + ` FROM payslips WHERE employee_id = $1 AND year = $2 AND month = $3 AND status <> 'deleted'`
	return r.scanOne(q.QueryRow(ctx, query, employeeID, year, int(month)))
}

func (r *payrollRepository) ListByPeriod(ctx context.Context, year int, month time.Month) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + payslipColumns + `
		FROM payslips
		WHERE year = $1 AND month = $2 AND status <> 'deleted'
		ORDER BY employee_id
	`
	return r.list(ctx, q, query, year, int(month))
}

func (r *payrollRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + payslipColumns + `
		FROM payslips
		WHERE employee_id = $1 AND status <> 'deleted'
		ORDER BY year DESC, month DESC
	`
	return r.list(ctx, q, query, employeeID)
}

func (r *payrollRepository) UpdateStatus(ctx context.Context, id string, status payroll.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE payslips SET status = $2, updated_at = NOW() WHERE id = $1 AND status <> 'deleted'`,
		id, string(status),
	)
	if err != nil {
		return fmt.Errorf("update payslip status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayslipNotFound
	}
	return nil
}

// Delete soft-deletes: the row stays for audit but every read filters it.
func (r *payrollRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE payslips SET status = 'deleted', updated_at = NOW() WHERE id = $1 AND status <> 'deleted'`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete payslip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayslipNotFound
	}
	return nil
}

func (r *payrollRepository) scanOne(row pgx.Row) (*payroll.Payslip, error) {
	var slip payroll.Payslip
	if err := scanPayslip(row, &slip); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrPayslipNotFound
		}
		return nil, fmt.Errorf("get payslip: %w", err)
	}
	return &slip, nil
}

func (r *payrollRepository) list(ctx context.Context, q database.Querier, query string, args ...any) ([]payroll.Payslip, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payslips: %w", err)
	}
	defer rows.Close()

	var slips []payroll.Payslip
	for rows.Next() {
		var slip payroll.Payslip
		if err := scanPayslip(rows, &slip); err != nil {
			return nil, fmt.Errorf("scan payslip: %w", err)
		}
		slips = append(slips, slip)
	}
	return slips, rows.Err()
}

func scanPayslip(row pgx.Row, slip *payroll.Payslip) error {
	var month int
	var status string

	err := row.Scan(
		&slip.ID, &slip.EmployeeID, &slip.Year, &month,
		&slip.WorkedDays, &slip.AbsentDays, &slip.OvertimeHrs,
		&slip.BaseSalary, &slip.Gratification, &slip.OvertimePay, &slip.TaxableIncome,
		&slip.MealAllowance, &slip.TransportAllowance, &slip.NonTaxableIncome,
		&slip.AFPPlan, &slip.AFPAmount, &slip.HealthSystem, &slip.HealthAmount, &slip.UIAmount, &slip.TaxAmount,
		&slip.NetPay, &status, &slip.CreatedAt, &slip.UpdatedAt,
	)
	if err != nil {
		return err
	}

	slip.Month = time.Month(month)
	slip.Status = payroll.Status(status)
	return nil
}
