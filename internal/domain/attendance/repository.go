package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Upsert inserts an attendance record, or overwrites status and remarks
	// when a record already exists for the same (employee_id, date) pair.
	Upsert(ctx context.Context, record Attendance) (Attendance, error)

	// ListByEmployeeAndRange retrieves records for one employee with
	// start <= date < end, ordered by date.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)

	// List retrieves records across employees with optional filters,
	// newest first, with the employee name joined in.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)
}
