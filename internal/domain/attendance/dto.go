package attendance

import (
	"time"

	"github.com/checadormx/checador-backend-go/internal/pkg/validator"
)

type PunchResponse struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName *string    `json:"employee_name,omitempty"`
	Date         string     `json:"date"`
	CheckIn      *time.Time `json:"check_in"`
	CheckOut     *time.Time `json:"check_out"`
	CreatedAt    time.Time  `json:"created_at"`
}

func ToResponse(p Punch) PunchResponse {
	return PunchResponse{
		ID:           p.ID,
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		Date:         p.Date.Format("2006-01-02"),
		CheckIn:      p.CheckIn,
		CheckOut:     p.CheckOut,
		CreatedAt:    p.CreatedAt,
	}
}

type CheckRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchFilter struct {
	Date       *string
	EmployeeID *string
}

func (f *PunchFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil {
		if _, ok := validator.IsValidDate(*f.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
		}
	}
	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePunchRequest struct {
	ID       string
	Date     string  `json:"date"`
	CheckIn  *string `json:"check_in"`  // "HH:MM", empty clears
	CheckOut *string `json:"check_out"` // "HH:MM", empty clears
}

func (r *UpdatePunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "must be a valid UUID"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if r.CheckIn != nil && *r.CheckIn != "" && !validator.IsValidTimeOfDay(*r.CheckIn) {
		errs = append(errs, validator.ValidationError{Field: "check_in", Message: "must be HH:MM"})
	}
	if r.CheckOut != nil && *r.CheckOut != "" && !validator.IsValidTimeOfDay(*r.CheckOut) {
		errs = append(errs, validator.ValidationError{Field: "check_out", Message: "must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
