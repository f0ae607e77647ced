package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/payrollpro/payroll-backend-go/internal/domain/payroll"
	"github.com/payrollpro/payroll-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll (
			id, employee_id, month, year,
			basic_salary, hra, da, ta, other_allowances, gross_salary,
			pf_deduction, tax_deduction, other_deductions, total_deductions, net_salary,
			working_days, present_days, absent_days, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, created_at
	`

	created := record
	err := q.QueryRow(ctx, query,
		uuid.NewString(), record.EmployeeID, record.Month, record.Year,
		record.BasicSalary, record.HRA, record.DA, record.TA, record.OtherAllowances, record.GrossSalary,
		record.PFDeduction, record.TaxDeduction, record.OtherDeductions, record.TotalDeductions, record.NetSalary,
		record.WorkingDays, record.PresentDays, record.AbsentDays, record.Status,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			// The (employee_id, month, year) constraint turns the concurrent
			// double-run race into a clean conflict instead of a duplicate.
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, year,
			basic_salary, hra, da, ta, other_allowances, gross_salary,
			pf_deduction, tax_deduction, other_deductions, total_deductions, net_salary,
			working_days, present_days, absent_days, status, created_at
		FROM payroll
		WHERE employee_id = $1 AND month = $2 AND year = $3
	`

	var p payroll.PayrollRecord
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(
		&p.ID, &p.EmployeeID, &p.Month, &p.Year,
		&p.BasicSalary, &p.HRA, &p.DA, &p.TA, &p.OtherAllowances, &p.GrossSalary,
		&p.PFDeduction, &p.TaxDeduction, &p.OtherDeductions, &p.TotalDeductions, &p.NetSalary,
		&p.WorkingDays, &p.PresentDays, &p.AbsentDays, &p.Status, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, e.name, p.month, p.year,
			p.basic_salary, p.hra, p.da, p.ta, p.other_allowances, p.gross_salary,
			p.pf_deduction, p.tax_deduction, p.other_deductions, p.total_deductions, p.net_salary,
			p.working_days, p.present_days, p.absent_days, p.status, p.created_at
		FROM payroll p
		JOIN employees e ON e.id = p.employee_id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.Month != nil && filter.Year != nil {
		query += fmt.Sprintf(" AND p.month = $%d AND p.year = $%d", argIdx, argIdx+1)
		args = append(args, *filter.Month, *filter.Year)
		argIdx += 2
	}
	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	query += " ORDER BY p.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		var p payroll.PayrollRecord
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.EmployeeName, &p.Month, &p.Year,
			&p.BasicSalary, &p.HRA, &p.DA, &p.TA, &p.OtherAllowances, &p.GrossSalary,
			&p.PFDeduction, &p.TaxDeduction, &p.OtherDeductions, &p.TotalDeductions, &p.NetSalary,
			&p.WorkingDays, &p.PresentDays, &p.AbsentDays, &p.Status, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, p)
	}

	return records, rows.Err()
}

func (r *payrollRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, year,
			basic_salary, hra, da, ta, other_allowances, gross_salary,
			pf_deduction, tax_deduction, other_deductions, total_deductions, net_salary,
			working_days, present_days, absent_days, status, created_at
		FROM payroll
		WHERE employee_id = $1
		ORDER BY year DESC, month DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		var p payroll.PayrollRecord
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Month, &p.Year,
			&p.BasicSalary, &p.HRA, &p.DA, &p.TA, &p.OtherAllowances, &p.GrossSalary,
			&p.PFDeduction, &p.TaxDeduction, &p.OtherDeductions, &p.TotalDeductions, &p.NetSalary,
			&p.WorkingDays, &p.PresentDays, &p.AbsentDays, &p.Status, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, p)
	}

	return records, rows.Err()
}

func (r *payrollRepository) MarkPaid(ctx context.Context, ids []string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE payroll
		SET status = 'paid'
		WHERE id = ANY($1) AND status = 'processed'
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to mark payroll records paid: %w", err)
	}

	if int(tag.RowsAffected()) != len(ids) {
		return payroll.ErrPayrollRecordNotProcessed
	}

	return nil
}

func (r *payrollRepository) GetSummary(ctx context.Context, month, year int) (payroll.PayrollSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			COALESCE(SUM(gross_salary), 0),
			COALESCE(SUM(total_deductions), 0),
			COALESCE(SUM(net_salary), 0)
		FROM payroll
		WHERE month = $1 AND year = $2
	`

	summary := payroll.PayrollSummary{Month: month, Year: year}
	err := q.QueryRow(ctx, query, month, year).Scan(
		&summary.TotalEmployees, &summary.TotalGross, &summary.TotalDeductions, &summary.TotalNet,
	)
	if err != nil {
		return payroll.PayrollSummary{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}

	return summary, nil
}
