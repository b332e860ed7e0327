package employee

import (
	"context"
)

// EmployeeService defines business logic for employee administration.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	SetPIN(ctx context.Context, req SetPINRequest) error
	Delete(ctx context.Context, id string) error
}
