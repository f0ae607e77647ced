package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            string
	Name          string
	Email         string
	Phone         *string
	Department    *string
	Designation   *string
	DateOfJoining time.Time

	// Compensation structure, frozen into payroll records at processing time.
	BasicSalary     decimal.Decimal
	HRA             decimal.Decimal
	DA              decimal.Decimal
	TA              decimal.Decimal
	OtherAllowances decimal.Decimal
	PFDeduction     decimal.Decimal
	TaxDeduction    decimal.Decimal
	OtherDeductions decimal.Decimal

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GrossSalary is the sum of basic pay and all allowances before deductions.
func (e Employee) GrossSalary() decimal.Decimal {
	return e.BasicSalary.Add(e.HRA).Add(e.DA).Add(e.TA).Add(e.OtherAllowances)
}

// StandingDeductions are the fixed per-period deductions configured on the
// employee record, independent of attendance.
func (e Employee) StandingDeductions() decimal.Decimal {
	return e.PFDeduction.Add(e.TaxDeduction).Add(e.OtherDeductions)
}
