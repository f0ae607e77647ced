package payroll

import "context"

type PayrollService interface {
	// Run processes payroll for every active employee in the given period.
	// Employees already processed for the period are skipped, so repeated
	// invocations are safe and convergent.
	Run(ctx context.Context, req RunPayrollRequest) (RunSummary, error)

	List(ctx context.Context, filter PayrollFilter) ([]PayrollRecordResponse, error)
	PayslipsFor(ctx context.Context, employeeID string) ([]PayrollRecordResponse, error)
	MarkPaid(ctx context.Context, req MarkPaidRequest) error
	Summary(ctx context.Context, month, year int) (PayrollSummary, error)
}
