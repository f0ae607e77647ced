package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/payrollpro/payroll-backend-go/internal/domain/attendance"
	"github.com/payrollpro/payroll-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func attendanceKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	key := attendanceKey(record.EmployeeID, record.Date)
	record.ID = key
	f.records[key] = record
	return record, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range f.records {
		if a.EmployeeID == employeeID && !a.Date.Before(start) && a.Date.Before(end) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range f.records {
		out = append(out, a)
	}
	return out, nil
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

func newAttendanceFixture() (*fakeAttendanceRepo, attendance.AttendanceService) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, &fakeEmployeeRepo{known: map[string]bool{"emp-1": true}})
	return repo, svc
}

func TestMark_CreatesRecord(t *testing.T) {
	_, svc := newAttendanceFixture()

	marked, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2024-04-01",
		Status:     "present",
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-04-01", marked.Date)
	assert.Equal(t, "present", marked.Status)
}

func TestMark_SecondWriteOverwrites(t *testing.T) {
	repo, svc := newAttendanceFixture()

	_, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2024-04-01",
		Status:     "present",
	})
	require.NoError(t, err)

	remarks := "corrected after review"
	_, err = svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2024-04-01",
		Status:     "absent",
		Remarks:    &remarks,
	})
	require.NoError(t, err)

	assert.Len(t, repo.records, 1, "same day must not produce two rows")
	stored := repo.records[attendanceKey("emp-1", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))]
	assert.Equal(t, attendance.StatusAbsent, stored.Status)
}

func TestMark_UnknownEmployee(t *testing.T) {
	_, svc := newAttendanceFixture()

	_, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "ghost",
		Date:       "2024-04-01",
		Status:     "present",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestMark_InvalidStatus(t *testing.T) {
	_, svc := newAttendanceFixture()

	_, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2024-04-01",
		Status:     "vacation",
	})
	assert.Error(t, err)
}

func TestListForEmployee_MonthBoundaries(t *testing.T) {
	_, svc := newAttendanceFixture()

	for _, date := range []string{"2024-03-31", "2024-04-01", "2024-04-30", "2024-05-01"} {
		_, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
			EmployeeID: "emp-1",
			Date:       date,
			Status:     "present",
		})
		require.NoError(t, err)
	}

	records, err := svc.ListForEmployee(context.Background(), "emp-1", 4, 2024)
	require.NoError(t, err)

	require.Len(t, records, 2)
	dates := []string{records[0].Date, records[1].Date}
	assert.Contains(t, dates, "2024-04-01")
	assert.Contains(t, dates, "2024-04-30")
}
