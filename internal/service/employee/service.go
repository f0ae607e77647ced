package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/payrollpro/payroll-backend-go/internal/domain/employee"
	"github.com/payrollpro/payroll-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

// TxRunner executes fn atomically. The postgresql package provides the
// production implementation; tests substitute a pass-through.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

type employeeService struct {
	employeeRepo employee.EmployeeRepository
	userRepo     user.UserRepository
	runTx        TxRunner
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, userRepo user.UserRepository, runTx TxRunner) employee.EmployeeService {
	return &employeeService{
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
		runTx:        runTx,
	}
}

func (s *employeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email, nil)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee email: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	dateOfJoining, err := time.Parse("2006-01-02", req.DateOfJoining)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse date of joining: %w", err)
	}

	newEmployee := employee.Employee{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Department:      req.Department,
		Designation:     req.Designation,
		DateOfJoining:   dateOfJoining,
		BasicSalary:     req.BasicSalary,
		HRA:             req.HRA,
		DA:              req.DA,
		TA:              req.TA,
		OtherAllowances: req.OtherAllowances,
		PFDeduction:     req.PFDeduction,
		TaxDeduction:    req.TaxDeduction,
		OtherDeductions: req.OtherDeductions,
	}

	var created employee.Employee
	// Employee row and optional login account are created atomically, so a
	// username collision does not leave an orphaned employee behind.
	err = s.runTx(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.employeeRepo.Create(txCtx, newEmployee)
		if txErr != nil {
			return txErr
		}

		if req.Username == nil {
			return nil
		}

		passwordHash, txErr := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if txErr != nil {
			return fmt.Errorf("failed to hash password: %w", txErr)
		}

		_, txErr = s.userRepo.Create(txCtx, user.User{
			Username:     *req.Username,
			PasswordHash: string(passwordHash),
			Role:         user.RoleEmployee,
			EmployeeID:   &created.ID,
		})
		return txErr
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

func (s *employeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

func (s *employeeService) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

func (s *employeeService) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if req.Email != nil {
		exists, err := s.employeeRepo.ExistsByEmail(ctx, *req.Email, &req.ID)
		if err != nil {
			return fmt.Errorf("failed to check employee email: %w", err)
		}
		if exists {
			return employee.ErrEmailExists
		}
	}

	return s.employeeRepo.Update(ctx, req.ID, req)
}

func (s *employeeService) Deactivate(ctx context.Context, id string) error {
	return s.employeeRepo.Deactivate(ctx, id)
}
