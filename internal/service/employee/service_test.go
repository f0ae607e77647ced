package employee

import (
	"context"
	"errors"
	"testing"

	"github.com/payrollpro/payroll-backend-go/internal/domain/employee"
	"github.com/payrollpro/payroll-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	emails    map[string]bool
	nextID    int
	createErr error
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees: make(map[string]employee.Employee),
		emails:    make(map[string]bool),
	}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	if f.createErr != nil {
		return employee.Employee{}, f.createErr
	}
	f.nextID++
	newEmployee.ID = string(rune('a' + f.nextID))
	newEmployee.IsActive = true
	f.employees[newEmployee.ID] = newEmployee
	f.emails[newEmployee.Email] = true
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.IsActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	e, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.BasicSalary != nil {
		e.BasicSalary = *req.BasicSalary
	}
	f.employees[id] = e
	return nil
}

func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	e, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.IsActive = false
	f.employees[id] = e
	return nil
}

func (f *fakeEmployeeRepo) ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error) {
	return f.emails[email], nil
}

type fakeUserRepo struct {
	users     map[string]user.User
	createErr error
}

func (f *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	if f.createErr != nil {
		return user.User{}, f.createErr
	}
	newUser.ID = "user-" + newUser.Username
	f.users[newUser.Username] = newUser
	return newUser, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	u, ok := f.users[username]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func passthroughTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:          "Asha Verma",
		Email:         "asha@example.com",
		DateOfJoining: "2023-06-01",
		BasicSalary:   decimal.RequireFromString("30000"),
		HRA:           decimal.RequireFromString("5000"),
	}
}

func newEmployeeFixture() (*fakeEmployeeRepo, *fakeUserRepo, employee.EmployeeService) {
	employeeRepo := newFakeEmployeeRepo()
	userRepo := &fakeUserRepo{users: make(map[string]user.User)}
	svc := NewEmployeeService(employeeRepo, userRepo, passthroughTx)
	return employeeRepo, userRepo, svc
}

func TestCreate_Success(t *testing.T) {
	_, userRepo, svc := newEmployeeFixture()

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)
	assert.Empty(t, userRepo.users, "no login account requested")
}

func TestCreate_WithLoginAccount(t *testing.T) {
	_, userRepo, svc := newEmployeeFixture()

	req := validCreateRequest()
	username, password := "asha", "s3cret-pass"
	req.Username = &username
	req.Password = &password

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	u, ok := userRepo.users["asha"]
	require.True(t, ok)
	assert.Equal(t, user.RoleEmployee, u.Role)
	require.NotNil(t, u.EmployeeID)
	assert.Equal(t, created.ID, *u.EmployeeID)
	assert.NotEqual(t, password, u.PasswordHash, "password must be hashed")
}

func TestCreate_UsernameWithoutPassword(t *testing.T) {
	_, _, svc := newEmployeeFixture()

	req := validCreateRequest()
	username := "asha"
	req.Username = &username

	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	_, _, svc := newEmployeeFixture()

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestCreate_NegativeAmount(t *testing.T) {
	_, _, svc := newEmployeeFixture()

	req := validCreateRequest()
	req.PFDeduction = decimal.RequireFromString("-1")

	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestCreate_UsernameConflictSurfacesFromTx(t *testing.T) {
	employeeRepo, userRepo, _ := newEmployeeFixture()
	userRepo.createErr = user.ErrUsernameExists
	svc := NewEmployeeService(employeeRepo, userRepo, passthroughTx)

	req := validCreateRequest()
	username, password := "taken", "s3cret-pass"
	req.Username = &username
	req.Password = &password

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, user.ErrUsernameExists)
}

func TestUpdate_DuplicateEmailExcludesSelf(t *testing.T) {
	employeeRepo, _, svc := newEmployeeFixture()

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	// The fake reports any registered email as taken, so this exercises the
	// conflict path even for the employee's own address.
	email := "other@example.com"
	employeeRepo.emails[email] = true

	err = svc.Update(context.Background(), employee.UpdateEmployeeRequest{ID: created.ID, Email: &email})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestDeactivate_RemovesFromActiveSet(t *testing.T) {
	employeeRepo, _, svc := newEmployeeFixture()

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(context.Background(), created.ID))

	active, err := employeeRepo.GetActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, active)

	// Still retrievable for payroll history.
	_, err = svc.GetByID(context.Background(), created.ID)
	assert.NoError(t, err)
}

func TestDeactivate_NotFound(t *testing.T) {
	_, _, svc := newEmployeeFixture()

	err := svc.Deactivate(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreate_TxFailurePropagates(t *testing.T) {
	employeeRepo, userRepo, _ := newEmployeeFixture()
	employeeRepo.createErr = errors.New("insert failed")
	svc := NewEmployeeService(employeeRepo, userRepo, passthroughTx)

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.Error(t, err)
}
