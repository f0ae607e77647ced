package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/payrollpro/payroll-backend-go/internal/domain/attendance"
	"github.com/payrollpro/payroll-backend-go/internal/domain/employee"
	"github.com/payrollpro/payroll-backend-go/internal/domain/payroll"
)

type payrollService struct {
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) payroll.PayrollService {
	return &payrollService{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

func (s *payrollService) Run(ctx context.Context, req payroll.RunPayrollRequest) (payroll.RunSummary, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunSummary{}, err
	}

	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return payroll.RunSummary{}, fmt.Errorf("failed to load active employees: %w", err)
	}

	summary := payroll.RunSummary{Month: req.Month, Year: req.Year}

	// Each employee is processed independently: one failure is recorded and
	// the run moves on, so a single bad record never blocks the batch.
	for _, e := range employees {
		processed, err := s.processEmployee(ctx, e, req.Month, req.Year)
		switch {
		case err != nil:
			summary.Failures = append(summary.Failures, payroll.RunFailure{
				EmployeeID: e.ID,
				Reason:     err.Error(),
			})
		case processed:
			summary.ProcessedCount++
		default:
			summary.SkippedEmployeeIDs = append(summary.SkippedEmployeeIDs, e.ID)
		}
	}

	return summary, nil
}

// processEmployee computes and stores one employee's record for the period.
// Returns false with a nil error when the employee was already processed.
func (s *payrollService) processEmployee(ctx context.Context, e employee.Employee, month, year int) (bool, error) {
	_, err := s.payrollRepo.GetByEmployeePeriod(ctx, e.ID, month, year)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, payroll.ErrPayrollRecordNotFound) {
		return false, fmt.Errorf("failed to check existing record: %w", err)
	}

	summary, err := s.aggregateAttendance(ctx, e.ID, month, year)
	if err != nil {
		return false, err
	}

	record, err := Calculate(e, summary, month, year)
	if err != nil {
		return false, err
	}

	if _, err := s.payrollRepo.Create(ctx, record); err != nil {
		// A concurrent run got there first. The unique constraint already
		// guaranteed exactly one record, so treat it as a skip.
		if errors.Is(err, payroll.ErrPayrollRecordAlreadyExists) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// aggregateAttendance classifies one employee's month. Every calendar day in
// the window is a working day; present and half-day rows count as present,
// absent rows count as absent, and leave rows and unmarked days count as
// neither.
func (s *payrollService) aggregateAttendance(ctx context.Context, employeeID string, month, year int) (payroll.AttendanceSummary, error) {
	start, end := attendance.MonthWindow(month, year)

	records, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, employeeID, start, end)
	if err != nil {
		return payroll.AttendanceSummary{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	summary := payroll.AttendanceSummary{
		WorkingDays: int(end.Sub(start).Hours() / 24),
	}
	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent, attendance.StatusHalfDay:
			summary.PresentDays++
		case attendance.StatusAbsent:
			summary.AbsentDays++
		}
	}

	return summary, nil
}

func (s *payrollService) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecordResponse, error) {
	records, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return payroll.ToResponses(records), nil
}

func (s *payrollService) PayslipsFor(ctx context.Context, employeeID string) ([]payroll.PayrollRecordResponse, error) {
	records, err := s.payrollRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return payroll.ToResponses(records), nil
}

func (s *payrollService) MarkPaid(ctx context.Context, req payroll.MarkPaidRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.payrollRepo.MarkPaid(ctx, req.RecordIDs)
}

func (s *payrollService) Summary(ctx context.Context, month, year int) (payroll.PayrollSummary, error) {
	req := payroll.RunPayrollRequest{Month: month, Year: year}
	if err := req.Validate(); err != nil {
		return payroll.PayrollSummary{}, err
	}
	return s.payrollRepo.GetSummary(ctx, month, year)
}
