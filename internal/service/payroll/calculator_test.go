package payroll

import (
	"testing"

	"github.com/payrollpro/payroll-backend-go/internal/domain/employee"
	"github.com/payrollpro/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:              "emp-1",
		Name:            "Asha Verma",
		BasicSalary:     d("30000"),
		HRA:             d("5000"),
		DA:              d("0"),
		TA:              d("0"),
		OtherAllowances: d("0"),
		PFDeduction:     d("1800"),
		TaxDeduction:    d("2000"),
		OtherDeductions: d("0"),
	}
}

func TestCalculate_WithAbsences(t *testing.T) {
	e := testEmployee()
	summary := payroll.AttendanceSummary{WorkingDays: 30, PresentDays: 27, AbsentDays: 3}

	record, err := Calculate(e, summary, 4, 2024)
	require.NoError(t, err)

	// gross 35000, per-day 1166.66..., absence deduction 3500
	assert.True(t, record.GrossSalary.Equal(d("35000")), "gross = %s", record.GrossSalary)
	assert.True(t, record.OtherDeductions.Equal(d("3500")), "absence deduction = %s", record.OtherDeductions)
	assert.True(t, record.TotalDeductions.Equal(d("7300")), "total deductions = %s", record.TotalDeductions)
	assert.True(t, record.NetSalary.Equal(d("27700")), "net = %s", record.NetSalary)

	// The per-day rate alone does not terminate; multiplying before dividing
	// must keep the monetary outputs free of a trailing residue digit.
	assert.Equal(t, "7300", record.TotalDeductions.String())
	assert.Equal(t, "27700", record.NetSalary.String())
	assert.Equal(t, payroll.StatusProcessed, record.Status)
	assert.Equal(t, 30, record.WorkingDays)
	assert.Equal(t, 27, record.PresentDays)
	assert.Equal(t, 3, record.AbsentDays)
}

func TestCalculate_NoAbsences(t *testing.T) {
	e := testEmployee()
	summary := payroll.AttendanceSummary{WorkingDays: 30, PresentDays: 30}

	record, err := Calculate(e, summary, 4, 2024)
	require.NoError(t, err)

	assert.True(t, record.NetSalary.Equal(d("31200")), "net = %s", record.NetSalary)
	assert.True(t, record.OtherDeductions.IsZero())
}

func TestCalculate_AllDaysAbsent(t *testing.T) {
	e := testEmployee()
	summary := payroll.AttendanceSummary{WorkingDays: 30, AbsentDays: 30}

	record, err := Calculate(e, summary, 4, 2024)
	require.NoError(t, err)

	// Absence deduction consumes the full gross, leaving the standing
	// deductions as negative net.
	assert.True(t, record.NetSalary.Equal(d("-3800")), "net = %s", record.NetSalary)
	assert.True(t, record.NetSalary.IsNegative())
}

func TestCalculate_AbsenceFoldedIntoOtherDeductions(t *testing.T) {
	e := testEmployee()
	e.OtherDeductions = d("500")
	summary := payroll.AttendanceSummary{WorkingDays: 30, PresentDays: 27, AbsentDays: 3}

	record, err := Calculate(e, summary, 4, 2024)
	require.NoError(t, err)

	// 500 standing + 3500 absence deduction in one bucket, while the
	// snapshot of pf and tax stays untouched.
	assert.True(t, record.OtherDeductions.Equal(d("4000")), "other deductions = %s", record.OtherDeductions)
	assert.True(t, record.PFDeduction.Equal(d("1800")))
	assert.True(t, record.TaxDeduction.Equal(d("2000")))
}

func TestCalculate_ZeroWorkingDays(t *testing.T) {
	_, err := Calculate(testEmployee(), payroll.AttendanceSummary{}, 4, 2024)
	assert.ErrorIs(t, err, payroll.ErrZeroWorkingDays)
}

func TestCalculate_FractionalPerDayRate(t *testing.T) {
	e := testEmployee()
	e.BasicSalary = d("10000")
	e.HRA = d("0")
	e.PFDeduction = d("0")
	e.TaxDeduction = d("0")
	summary := payroll.AttendanceSummary{WorkingDays: 31, PresentDays: 30, AbsentDays: 1}

	record, err := Calculate(e, summary, 1, 2024)
	require.NoError(t, err)

	// 10000/31 does not terminate, so the deduction is rounded by the
	// decimal division. It must stay within a day's pay of the true rate
	// and net + deductions must still reconstruct gross exactly.
	assert.True(t, record.OtherDeductions.GreaterThan(d("322.58")), "deduction = %s", record.OtherDeductions)
	assert.True(t, record.OtherDeductions.LessThan(d("322.59")), "deduction = %s", record.OtherDeductions)

	total := record.NetSalary.Add(record.TotalDeductions)
	assert.True(t, total.Equal(record.GrossSalary),
		"net %s + deductions %s should reconstruct gross %s", record.NetSalary, record.TotalDeductions, record.GrossSalary)
}
