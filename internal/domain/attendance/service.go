package attendance

import "context"

type AttendanceService interface {
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)
	ListForEmployee(ctx context.Context, employeeID string, month, year int) ([]AttendanceResponse, error)
}
