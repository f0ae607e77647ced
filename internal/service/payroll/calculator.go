package payroll

import (
	"github.com/payrollpro/payroll-backend-go/internal/domain/employee"
	"github.com/payrollpro/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Calculate computes one employee's payroll record for a period from the
// compensation structure and the attendance summary. Pure function: no I/O,
// no clock, fully deterministic.
//
// The absence deduction is the per-day gross rate times the number of absent
// days, and is folded into the other-deductions bucket of the record. The
// multiplication happens before the division so the result stays exact
// whenever gross times absent days divides evenly by the working days,
// instead of carrying a division-precision residue. Net pay is not clamped:
// an employee whose deductions exceed gross carries a negative net amount
// for the finance team to settle.
func Calculate(e employee.Employee, summary payroll.AttendanceSummary, month, year int) (payroll.PayrollRecord, error) {
	if summary.WorkingDays == 0 {
		return payroll.PayrollRecord{}, payroll.ErrZeroWorkingDays
	}

	gross := e.GrossSalary()
	absenceDeduction := gross.
		Mul(decimal.NewFromInt(int64(summary.AbsentDays))).
		Div(decimal.NewFromInt(int64(summary.WorkingDays)))

	otherDeductions := e.OtherDeductions.Add(absenceDeduction)
	totalDeductions := e.StandingDeductions().Add(absenceDeduction)
	net := gross.Sub(totalDeductions)

	return payroll.PayrollRecord{
		EmployeeID: e.ID,
		Month:      month,
		Year:       year,

		BasicSalary:     e.BasicSalary,
		HRA:             e.HRA,
		DA:              e.DA,
		TA:              e.TA,
		OtherAllowances: e.OtherAllowances,
		GrossSalary:     gross,

		PFDeduction:     e.PFDeduction,
		TaxDeduction:    e.TaxDeduction,
		OtherDeductions: otherDeductions,
		TotalDeductions: totalDeductions,
		NetSalary:       net,

		WorkingDays: summary.WorkingDays,
		PresentDays: summary.PresentDays,
		AbsentDays:  summary.AbsentDays,

		Status: payroll.StatusProcessed,
	}, nil
}
