package employee

import (
	"github.com/payrollpro/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         *string `json:"phone,omitempty"`
	Department    *string `json:"department,omitempty"`
	Designation   *string `json:"designation,omitempty"`
	DateOfJoining string  `json:"date_of_joining"`

	BasicSalary     decimal.Decimal `json:"basic_salary"`
	HRA             decimal.Decimal `json:"hra"`
	DA              decimal.Decimal `json:"da"`
	TA              decimal.Decimal `json:"ta"`
	OtherAllowances decimal.Decimal `json:"other_allowances"`
	PFDeduction     decimal.Decimal `json:"pf_deduction"`
	TaxDeduction    decimal.Decimal `json:"tax_deduction"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`

	// Optional login account for the new employee.
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_of_joining", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	amounts := map[string]decimal.Decimal{
		"basic_salary":     r.BasicSalary,
		"hra":              r.HRA,
		"da":               r.DA,
		"ta":               r.TA,
		"other_allowances": r.OtherAllowances,
		"pf_deduction":     r.PFDeduction,
		"tax_deduction":    r.TaxDeduction,
		"other_deductions": r.OtherDeductions,
	}
	for field, amount := range amounts {
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if r.Username != nil && !validator.IsValidUsername(*r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "must be 3-50 characters (letters, digits, '.', '_', '-')"})
	}
	if (r.Username == nil) != (r.Password == nil) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "username and password must be provided together"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Department  *string `json:"department,omitempty"`
	Designation *string `json:"designation,omitempty"`

	BasicSalary     *decimal.Decimal `json:"basic_salary,omitempty"`
	HRA             *decimal.Decimal `json:"hra,omitempty"`
	DA              *decimal.Decimal `json:"da,omitempty"`
	TA              *decimal.Decimal `json:"ta,omitempty"`
	OtherAllowances *decimal.Decimal `json:"other_allowances,omitempty"`
	PFDeduction     *decimal.Decimal `json:"pf_deduction,omitempty"`
	TaxDeduction    *decimal.Decimal `json:"tax_deduction,omitempty"`
	OtherDeductions *decimal.Decimal `json:"other_deductions,omitempty"`

	IsActive *bool `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}

	amounts := map[string]*decimal.Decimal{
		"basic_salary":     r.BasicSalary,
		"hra":              r.HRA,
		"da":               r.DA,
		"ta":               r.TA,
		"other_allowances": r.OtherAllowances,
		"pf_deduction":     r.PFDeduction,
		"tax_deduction":    r.TaxDeduction,
		"other_deductions": r.OtherDeductions,
	}
	for field, amount := range amounts {
		if amount != nil && amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         *string `json:"phone,omitempty"`
	Department    *string `json:"department,omitempty"`
	Designation   *string `json:"designation,omitempty"`
	DateOfJoining string  `json:"date_of_joining"`

	BasicSalary     decimal.Decimal `json:"basic_salary"`
	HRA             decimal.Decimal `json:"hra"`
	DA              decimal.Decimal `json:"da"`
	TA              decimal.Decimal `json:"ta"`
	OtherAllowances decimal.Decimal `json:"other_allowances"`
	PFDeduction     decimal.Decimal `json:"pf_deduction"`
	TaxDeduction    decimal.Decimal `json:"tax_deduction"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`

	IsActive bool `json:"is_active"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:              e.ID,
		Name:            e.Name,
		Email:           e.Email,
		Phone:           e.Phone,
		Department:      e.Department,
		Designation:     e.Designation,
		DateOfJoining:   e.DateOfJoining.Format("2006-01-02"),
		BasicSalary:     e.BasicSalary,
		HRA:             e.HRA,
		DA:              e.DA,
		TA:              e.TA,
		OtherAllowances: e.OtherAllowances,
		PFDeduction:     e.PFDeduction,
		TaxDeduction:    e.TaxDeduction,
		OtherDeductions: e.OtherDeductions,
		IsActive:        e.IsActive,
	}
}
