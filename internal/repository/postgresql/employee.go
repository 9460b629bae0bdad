package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/andeshr/hrms-backend-go/internal/domain/employee"
	"github.com/andeshr/hrms-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, name, email, role, password_hash, base_salary, afp_plan, health_system,
	meal_allowance, transport_allowance, join_date, termination_date,
	created_at, updated_at`

func (r *employeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, name, email, role, password_hash, base_salary, afp_plan,
			health_system, meal_allowance, transport_allowance, join_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID,
		emp.Name,
		emp.Email,
		string(emp.Role),
		emp.PasswordHash,
		emp.BaseSalary,
		emp.AFPPlan,
		emp.HealthSystem,
		emp.MealAllowance,
		emp.TransportAllowance,
		emp.JoinDate,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "employees_email_key" {
				return employee.ErrEmailExists
			}
			return employee.ErrEmployeeExists
		}
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + employeeColumns + ` FROM employees WHERE id = $1`
	return r.scanOne(q.QueryRow(ctx, query, id))
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + employeeColumns + ` FROM employees WHERE email = $1`
	return r.scanOne(q.QueryRow(ctx, query, email))
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + employeeColumns + ` FROM employees ORDER BY name`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := scanEmployee(rows, &emp); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, emp *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			name = $2, email = $3, role = $4, base_salary = $5, afp_plan = $6,
			health_system = $7, meal_allowance = $8, transport_allowance = $9,
			termination_date = $10, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID,
		emp.Name,
		emp.Email,
		string(emp.Role),
		emp.BaseSalary,
		emp.AFPPlan,
		emp.HealthSystem,
		emp.MealAllowance,
		emp.TransportAllowance,
		emp.TerminationDate,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) scanOne(row pgx.Row) (*employee.Employee, error) {
	var emp employee.Employee
	if err := scanEmployee(row, &emp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &emp, nil
}

func scanEmployee(row pgx.Row, emp *employee.Employee) error {
	var role string
	err := row.Scan(
		&emp.ID, &emp.Name, &emp.Email, &role, &emp.PasswordHash,
		&emp.BaseSalary, &emp.AFPPlan, &emp.HealthSystem,
		&emp.MealAllowance, &emp.TransportAllowance,
		&emp.JoinDate, &emp.TerminationDate,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return err
	}
	emp.Role = employee.Role(role)
	return nil
}
