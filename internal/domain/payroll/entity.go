package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusProcessed Status = "processed"
	StatusPaid      Status = "paid"
)

// PayrollRecord is the persisted result of one payroll run for one
// employee and period. The compensation fields are a frozen snapshot of
// the employee record at processing time; only Status changes afterward.
// At most one record exists per (employee_id, month, year), enforced by a
// uniqueness constraint at the storage layer.
type PayrollRecord struct {
	ID         string
	EmployeeID string
	Month      int
	Year       int

	BasicSalary     decimal.Decimal
	HRA             decimal.Decimal
	DA              decimal.Decimal
	TA              decimal.Decimal
	OtherAllowances decimal.Decimal
	GrossSalary     decimal.Decimal

	PFDeduction  decimal.Decimal
	TaxDeduction decimal.Decimal
	// OtherDeductions carries the employee's standing other_deductions plus
	// the attendance-derived absence deduction, folded into one bucket for
	// backward-compatible reporting.
	OtherDeductions decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal

	WorkingDays int
	PresentDays int
	AbsentDays  int

	Status    Status
	CreatedAt time.Time

	// Joined fields
	EmployeeName *string
}

// AttendanceSummary is the aggregator's classification of one employee's
// month: WorkingDays counts every calendar day in the window, PresentDays
// counts rows marked present or half-day, AbsentDays counts rows marked
// absent. Days without a row and days marked leave contribute to neither.
type AttendanceSummary struct {
	WorkingDays int
	PresentDays int
	AbsentDays  int
}
