package payroll

import "errors"

var (
	ErrPayrollRecordNotFound      = errors.New("payroll record not found")
	ErrPayrollRecordAlreadyExists = errors.New("payroll record already exists for this period")
	ErrPayrollRecordNotProcessed  = errors.New("payroll record is not in processed status")
	ErrInvalidPeriod              = errors.New("invalid payroll period")
	ErrZeroWorkingDays            = errors.New("working days is zero, cannot compute per-day rate")
)
