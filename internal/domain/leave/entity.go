package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// LeaveRequest tracks a leave application through its lifecycle:
// pending -> approved or rejected, both terminal. Approved leave does NOT
// write attendance rows for the covered dates; operators mark attendance
// as "leave" separately if they want it reflected in payroll.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  string
	StartDate  time.Time
	EndDate    time.Time
	Days       int
	Reason     *string
	Status     Status
	AppliedAt  time.Time

	// Joined fields
	EmployeeName *string
}

// InclusiveDays counts calendar days from start to end, both ends included.
func InclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
