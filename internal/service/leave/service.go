package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/payrollpro/payroll-backend-go/internal/domain/employee"
	"github.com/payrollpro/payroll-backend-go/internal/domain/leave"
)

type leaveService struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &leaveService{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *leaveService) Apply(ctx context.Context, employeeID string, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return leave.LeaveResponse{}, err
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		Days:       leave.InclusiveDays(start, end),
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(created), nil
}

func (s *leaveService) ListForEmployee(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	requests, err := s.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

func (s *leaveService) ListByStatus(ctx context.Context, status string) ([]leave.LeaveResponse, error) {
	if status == "" {
		status = string(leave.StatusPending)
	}

	requests, err := s.leaveRepo.ListByStatus(ctx, leave.Status(status))
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

func (s *leaveService) Decide(ctx context.Context, req leave.DecideLeaveRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	current, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	// Decisions are final: an approved or rejected request never changes again.
	if current.Status != leave.StatusPending {
		return leave.ErrLeaveRequestAlreadyDecided
	}

	return s.leaveRepo.UpdateStatus(ctx, req.ID, leave.Status(req.Status))
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.ToResponse(r))
	}
	return responses
}
