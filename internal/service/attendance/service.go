package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/checadormx/checador-backend-go/internal/domain/attendance"
	"github.com/checadormx/checador-backend-go/internal/domain/employee"
)

type punchService struct {
	punches   attendance.PunchRepository
	employees employee.EmployeeRepository
	now       func() time.Time
}

func NewPunchService(punches attendance.PunchRepository, employees employee.EmployeeRepository) attendance.PunchService {
	return &punchService{
		punches:   punches,
		employees: employees,
		now:       time.Now,
	}
}

// CheckIn implements attendance.PunchService.
func (s *punchService) CheckIn(ctx context.Context, req attendance.CheckRequest) (attendance.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchResponse{}, err
	}

	e, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.PunchResponse{}, err
	}
	if !e.Active {
		return attendance.PunchResponse{}, employee.ErrEmployeeInactive
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	p, err := s.punches.CreateOpen(ctx, e.ID, today, now)
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	p.EmployeeName = &e.FullName
	return attendance.ToResponse(p), nil
}

// CheckOut implements attendance.PunchService. Deactivation only blocks
// new check-ins; an inactive employee can still close an open punch.
func (s *punchService) CheckOut(ctx context.Context, req attendance.CheckRequest) (attendance.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchResponse{}, err
	}

	e, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	p, err := s.punches.CloseOpen(ctx, e.ID, s.now())
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	p.EmployeeName = &e.FullName
	return attendance.ToResponse(p), nil
}

// List implements attendance.PunchService.
func (s *punchService) List(ctx context.Context, filter attendance.PunchFilter) ([]attendance.PunchResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	punches, err := s.punches.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, attendance.ToResponse(p))
	}
	return responses, nil
}

// Update implements attendance.PunchService. Nil times keep the stored
// value, empty strings clear it, "HH:MM" values are anchored on the
// request date.
func (s *punchService) Update(ctx context.Context, req attendance.UpdatePunchRequest) (attendance.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchResponse{}, err
	}

	p, err := s.punches.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, s.now().Location())
	if err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}
	p.Date = date

	p.CheckIn, err = resolveTime(req.CheckIn, p.CheckIn, date)
	if err != nil {
		return attendance.PunchResponse{}, err
	}
	p.CheckOut, err = resolveTime(req.CheckOut, p.CheckOut, date)
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	if err := s.punches.Update(ctx, p); err != nil {
		return attendance.PunchResponse{}, err
	}

	return attendance.ToResponse(p), nil
}

// Delete implements attendance.PunchService.
func (s *punchService) Delete(ctx context.Context, id string) error {
	return s.punches.Delete(ctx, id)
}

func resolveTime(req *string, current *time.Time, date time.Time) (*time.Time, error) {
	if req == nil {
		return current, nil
	}
	if *req == "" {
		return nil, nil
	}
	t, err := time.Parse("15:04", *req)
	if err != nil {
		return nil, fmt.Errorf("failed to parse time: %w", err)
	}
	at := time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
	return &at, nil
}
