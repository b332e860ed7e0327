package employee

import (
	"context"
	"fmt"

	"github.com/checadormx/checador-backend-go/internal/domain/employee"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type employeeService struct {
	repo employee.EmployeeRepository
}

func NewEmployeeService(repo employee.EmployeeRepository) employee.EmployeeService {
	return &employeeService{repo: repo}
}

// Create implements employee.EmployeeService.
func (s *employeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e := employee.Employee{
		FullName:           req.FullName,
		WeeklySalary:       req.WeeklySalary,
		WorkDays:           req.WorkDays,
		ScheduleIn:         req.ScheduleIn,
		ScheduleOut:        req.ScheduleOut,
		OvertimeHourlyRate: req.OvertimeHourlyRate,
		Active:             true,
		CardUUID:           uuid.NewString(),
	}

	if req.PIN != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.PIN), bcrypt.DefaultCost)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to hash pin: %w", err)
		}
		h := string(hash)
		e.PINHash = &h
	}

	created, err := s.repo.Create(ctx, e)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *employeeService) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

// List implements employee.EmployeeService.
func (s *employeeService) List(ctx context.Context, activeOnly bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// Update implements employee.EmployeeService. Partial update: only the
// fields present in the request change.
func (s *employeeService) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		e.FullName = *req.FullName
	}
	if req.WeeklySalary != nil {
		e.WeeklySalary = *req.WeeklySalary
	}
	if req.WorkDays != nil {
		e.WorkDays = *req.WorkDays
	}
	if req.ScheduleIn != nil {
		e.ScheduleIn = *req.ScheduleIn
	}
	if req.ScheduleOut != nil {
		e.ScheduleOut = *req.ScheduleOut
	}
	if req.OvertimeHourlyRate != nil {
		e.OvertimeHourlyRate = *req.OvertimeHourlyRate
	}
	if req.Active != nil {
		e.Active = *req.Active
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(e), nil
}

// SetPIN implements employee.EmployeeService.
func (s *employeeService) SetPIN(ctx context.Context, req employee.SetPINRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash pin: %w", err)
	}

	return s.repo.SetPINHash(ctx, req.ID, string(hash))
}

// Delete implements employee.EmployeeService.
func (s *employeeService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
