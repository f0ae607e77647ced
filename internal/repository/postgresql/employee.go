package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/payrollpro/payroll-backend-go/internal/domain/employee"
	"github.com/payrollpro/payroll-backend-go/internal/pkg/database"
)

const employeeColumns = `
	id, name, email, phone, department, designation, date_of_joining,
	basic_salary, hra, da, ta, other_allowances,
	pf_deduction, tax_deduction, other_deductions,
	is_active, created_at, updated_at
`

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.Email, &e.Phone, &e.Department, &e.Designation, &e.DateOfJoining,
		&e.BasicSalary, &e.HRA, &e.DA, &e.TA, &e.OtherAllowances,
		&e.PFDeduction, &e.TaxDeduction, &e.OtherDeductions,
		&e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO employees (
			id, name, email, phone, department, designation, date_of_joining,
			basic_salary, hra, da, ta, other_allowances,
			pf_deduction, tax_deduction, other_deductions
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING %s
	`, employeeColumns)

	e, err := scanEmployee(q.QueryRow(ctx, query,
		uuid.NewString(), newEmployee.Name, newEmployee.Email, newEmployee.Phone,
		newEmployee.Department, newEmployee.Designation, newEmployee.DateOfJoining,
		newEmployee.BasicSalary, newEmployee.HRA, newEmployee.DA, newEmployee.TA, newEmployee.OtherAllowances,
		newEmployee.PFDeduction, newEmployee.TaxDeduction, newEmployee.OtherDeductions,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE id = $1`, employeeColumns)

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	return r.list(ctx, false)
}

func (r *employeeRepository) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return r.list(ctx, true)
}

func (r *employeeRepository) list(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees`, employeeColumns)
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{id}
	argIdx := 2

	addSet := func(column string, value interface{}) {
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Email != nil {
		addSet("email", *req.Email)
	}
	if req.Phone != nil {
		addSet("phone", *req.Phone)
	}
	if req.Department != nil {
		addSet("department", *req.Department)
	}
	if req.Designation != nil {
		addSet("designation", *req.Designation)
	}
	if req.BasicSalary != nil {
		addSet("basic_salary", *req.BasicSalary)
	}
	if req.HRA != nil {
		addSet("hra", *req.HRA)
	}
	if req.DA != nil {
		addSet("da", *req.DA)
	}
	if req.TA != nil {
		addSet("ta", *req.TA)
	}
	if req.OtherAllowances != nil {
		addSet("other_allowances", *req.OtherAllowances)
	}
	if req.PFDeduction != nil {
		addSet("pf_deduction", *req.PFDeduction)
	}
	if req.TaxDeduction != nil {
		addSet("tax_deduction", *req.TaxDeduction)
	}
	if req.OtherDeductions != nil {
		addSet("other_deductions", *req.OtherDeductions)
	}
	if req.IsActive != nil {
		addSet("is_active", *req.IsActive)
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

// Deactivate soft-deletes: payroll history keeps referencing the employee row.
func (r *employeeRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET is_active = false, updated_at = NOW() WHERE id = $1 RETURNING id`

	var updatedID string
	err := q.QueryRow(ctx, query, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}

	return nil
}

func (r *employeeRepository) ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1 AND ($2::uuid IS NULL OR id <> $2))`

	var exists bool
	if err := q.QueryRow(ctx, query, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee email: %w", err)
	}

	return exists, nil
}
