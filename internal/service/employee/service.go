package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/biotrack-hr/attendance-backend-go/internal/domain/employee"
	"github.com/biotrack-hr/attendance-backend-go/internal/domain/shift"
)

// Service is the roster CRUD consumed by the HTTP layer.
type Service interface {
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	Get(ctx context.Context, id string) (employee.EmployeeResponse, error)
	List(ctx context.Context, filter employee.Filter) ([]employee.EmployeeResponse, int64, error)
	Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      employee.Repository
	shiftRepo shift.Repository
}

func NewService(repo employee.Repository, shiftRepo shift.Repository) Service {
	return &service{repo: repo, shiftRepo: shiftRepo}
}

func (s *service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	shiftName := normalizeShiftName(req.ShiftName)
	if err := s.checkShiftName(ctx, shiftName); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.repo.Create(ctx, employee.Employee{
		ID:             req.ID,
		FullName:       req.FullName,
		Email:          req.Email,
		DeviceEnrollID: req.DeviceEnrollID,
		ShiftName:      shiftName,
		JobStatus:      req.JobStatus,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

func (s *service) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

func (s *service) List(ctx context.Context, filter employee.Filter) ([]employee.EmployeeResponse, int64, error) {
	emps, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, total, nil
}

func (s *service) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Email != nil {
		emp.Email = req.Email
	}
	if req.ShiftName != nil {
		// An empty string clears the assignment back to auto-detection.
		name := normalizeShiftName(req.ShiftName)
		if name != nil {
			if err := s.checkShiftName(ctx, name); err != nil {
				return employee.EmployeeResponse{}, err
			}
		}
		emp.ShiftName = name
	}
	if req.JobStatus != nil {
		emp.JobStatus = *req.JobStatus
	}

	if err := s.repo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// checkShiftName rejects assignments to fixed shifts that do not exist, so
// the batch never fails a unit over a dangling reference.
func (s *service) checkShiftName(ctx context.Context, name *string) error {
	if name == nil || *name == "" {
		return nil
	}

	fixed, err := s.shiftRepo.ListFixed(ctx)
	if err != nil {
		return fmt.Errorf("failed to check shift name: %w", err)
	}
	for _, fs := range fixed {
		if fs.Name == *name {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", shift.ErrShiftNotFound, *name)
}

// normalizeShiftName upper-cases the reference to match catalog storage. An
// empty reference comes back as nil, meaning auto-detection.
func normalizeShiftName(name *string) *string {
	if name == nil || *name == "" {
		return nil
	}
	upper := strings.ToUpper(*name)
	return &upper
}
