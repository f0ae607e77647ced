package leave

import "context"

type LeaveService interface {
	Apply(ctx context.Context, employeeID string, req ApplyLeaveRequest) (LeaveResponse, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	ListByStatus(ctx context.Context, status string) ([]LeaveResponse, error)
	Decide(ctx context.Context, req DecideLeaveRequest) error
}
