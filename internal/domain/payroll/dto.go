package payroll

import (
	"time"

	"github.com/payrollpro/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RunPayrollRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *RunPayrollRequest) Validate() error {
	if r.Month < 1 || r.Month > 12 || r.Year <= 0 {
		return ErrInvalidPeriod
	}
	return nil
}

// RunFailure reports one employee whose processing failed within a run.
// Failures do not abort the batch.
type RunFailure struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

type RunSummary struct {
	Month              int          `json:"month"`
	Year               int          `json:"year"`
	ProcessedCount     int          `json:"processed_count"`
	SkippedEmployeeIDs []string     `json:"skipped_employee_ids,omitempty"`
	Failures           []RunFailure `json:"failures,omitempty"`
}

type PayrollFilter struct {
	Month      *int
	Year       *int
	EmployeeID *string
}

type MarkPaidRequest struct {
	RecordIDs []string `json:"record_ids"`
}

func (r *MarkPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.RecordIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "record_ids", Message: "at least one record is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollRecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`

	BasicSalary     decimal.Decimal `json:"basic_salary"`
	HRA             decimal.Decimal `json:"hra"`
	DA              decimal.Decimal `json:"da"`
	TA              decimal.Decimal `json:"ta"`
	OtherAllowances decimal.Decimal `json:"other_allowances"`
	GrossSalary     decimal.Decimal `json:"gross_salary"`

	PFDeduction     decimal.Decimal `json:"pf_deduction"`
	TaxDeduction    decimal.Decimal `json:"tax_deduction"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`

	WorkingDays int `json:"working_days"`
	PresentDays int `json:"present_days"`
	AbsentDays  int `json:"absent_days"`

	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

func ToResponse(r PayrollRecord) PayrollRecordResponse {
	return PayrollRecordResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		EmployeeName:    r.EmployeeName,
		Month:           r.Month,
		Year:            r.Year,
		BasicSalary:     r.BasicSalary,
		HRA:             r.HRA,
		DA:              r.DA,
		TA:              r.TA,
		OtherAllowances: r.OtherAllowances,
		GrossSalary:     r.GrossSalary,
		PFDeduction:     r.PFDeduction,
		TaxDeduction:    r.TaxDeduction,
		OtherDeductions: r.OtherDeductions,
		TotalDeductions: r.TotalDeductions,
		NetSalary:       r.NetSalary,
		WorkingDays:     r.WorkingDays,
		PresentDays:     r.PresentDays,
		AbsentDays:      r.AbsentDays,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}

func ToResponses(records []PayrollRecord) []PayrollRecordResponse {
	result := make([]PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, ToResponse(r))
	}
	return result
}

type PayrollSummary struct {
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	TotalEmployees  int             `json:"total_employees"`
	TotalGross      decimal.Decimal `json:"total_gross_salary"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNet        decimal.Decimal `json:"total_net_salary"`
}
