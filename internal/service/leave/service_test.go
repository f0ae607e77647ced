package leave

import (
	"context"
	"testing"
	"time"

	"github.com/payrollpro/payroll-backend-go/internal/domain/employee"
	"github.com/payrollpro/payroll-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	requests map[string]leave.LeaveRequest
	nextID   int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	request.ID = string(rune('a' + f.nextID))
	request.AppliedAt = time.Now()
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByStatus(ctx context.Context, status leave.Status) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.Status) error {
	request, ok := f.requests[id]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	request.Status = status
	f.requests[id] = request
	return nil
}

type fakeEmployeeRepo struct {
	known map[string]bool
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if !f.known[id] {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id}, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	return nil
}

func (f *fakeEmployeeRepo) ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error) {
	return false, nil
}

func newLeaveFixture() (*fakeLeaveRepo, leave.LeaveService) {
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(leaveRepo, &fakeEmployeeRepo{known: map[string]bool{"emp-1": true}})
	return leaveRepo, svc
}

func TestApply_InclusiveDayCount(t *testing.T) {
	_, svc := newLeaveFixture()

	created, err := svc.Apply(context.Background(), "emp-1", leave.ApplyLeaveRequest{
		LeaveType: "casual",
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, created.Days, "both endpoints count")
	assert.Equal(t, string(leave.StatusPending), created.Status)
}

func TestApply_SingleDay(t *testing.T) {
	_, svc := newLeaveFixture()

	created, err := svc.Apply(context.Background(), "emp-1", leave.ApplyLeaveRequest{
		LeaveType: "sick",
		StartDate: "2024-03-10",
		EndDate:   "2024-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.Days)
}

func TestApply_EndBeforeStart(t *testing.T) {
	_, svc := newLeaveFixture()

	_, err := svc.Apply(context.Background(), "emp-1", leave.ApplyLeaveRequest{
		LeaveType: "casual",
		StartDate: "2024-03-12",
		EndDate:   "2024-03-10",
	})
	assert.Error(t, err)
}

func TestApply_UnknownEmployee(t *testing.T) {
	_, svc := newLeaveFixture()

	_, err := svc.Apply(context.Background(), "ghost", leave.ApplyLeaveRequest{
		LeaveType: "casual",
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDecide_ApproveThenReDecide(t *testing.T) {
	leaveRepo, svc := newLeaveFixture()

	created, err := svc.Apply(context.Background(), "emp-1", leave.ApplyLeaveRequest{
		LeaveType: "casual",
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
	})
	require.NoError(t, err)

	err = svc.Decide(context.Background(), leave.DecideLeaveRequest{ID: created.ID, Status: "approved"})
	require.NoError(t, err)

	stored, err := leaveRepo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, stored.Status)

	// Decisions are final in either direction.
	err = svc.Decide(context.Background(), leave.DecideLeaveRequest{ID: created.ID, Status: "rejected"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyDecided)
}

func TestDecide_InvalidStatus(t *testing.T) {
	_, svc := newLeaveFixture()

	err := svc.Decide(context.Background(), leave.DecideLeaveRequest{ID: "x", Status: "pending"})
	assert.Error(t, err)
}

func TestDecide_NotFound(t *testing.T) {
	_, svc := newLeaveFixture()

	err := svc.Decide(context.Background(), leave.DecideLeaveRequest{ID: "missing", Status: "approved"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestListByStatus_DefaultsToPending(t *testing.T) {
	_, svc := newLeaveFixture()

	created, err := svc.Apply(context.Background(), "emp-1", leave.ApplyLeaveRequest{
		LeaveType: "casual",
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
	})
	require.NoError(t, err)

	pending, err := svc.ListByStatus(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, created.ID, pending[0].ID)

	err = svc.Decide(context.Background(), leave.DecideLeaveRequest{ID: created.ID, Status: "approved"})
	require.NoError(t, err)

	pending, err = svc.ListByStatus(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, pending)
}
