package payroll

import "context"

type PayrollRepository interface {
	// Create inserts a new payroll record. Returns
	// ErrPayrollRecordAlreadyExists when a record for the same
	// (employee_id, month, year) is already present.
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)

	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (PayrollRecord, error)
	List(ctx context.Context, filter PayrollFilter) ([]PayrollRecord, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PayrollRecord, error)

	// MarkPaid transitions processed records to paid. Records not in
	// processed status fail with ErrPayrollRecordNotProcessed.
	MarkPaid(ctx context.Context, ids []string) error

	// GetSummary reduces the persisted records of a period to totals.
	GetSummary(ctx context.Context, month, year int) (PayrollSummary, error)
}
