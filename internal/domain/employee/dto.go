package employee

import (
	"time"

	"github.com/checadormx/checador-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type EmployeeResponse struct {
	ID                 string          `json:"id"`
	FullName           string          `json:"full_name"`
	WeeklySalary       decimal.Decimal `json:"weekly_salary"`
	WorkDays           int             `json:"work_days"`
	ScheduleIn         string          `json:"schedule_in"`
	ScheduleOut        string          `json:"schedule_out"`
	OvertimeHourlyRate decimal.Decimal `json:"overtime_hourly_rate"`
	Active             bool            `json:"active"`
	CardUUID           string          `json:"card_uuid"`
	HasPIN             bool            `json:"has_pin"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                 e.ID,
		FullName:           e.FullName,
		WeeklySalary:       e.WeeklySalary,
		WorkDays:           e.WorkDays,
		ScheduleIn:         e.ScheduleIn,
		ScheduleOut:        e.ScheduleOut,
		OvertimeHourlyRate: e.OvertimeHourlyRate,
		Active:             e.Active,
		CardUUID:           e.CardUUID,
		HasPIN:             e.PINHash != nil,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

type CreateEmployeeRequest struct {
	FullName           string          `json:"full_name"`
	WeeklySalary       decimal.Decimal `json:"weekly_salary"`
	WorkDays           int             `json:"work_days"`
	ScheduleIn         string          `json:"schedule_in"`
	ScheduleOut        string          `json:"schedule_out"`
	OvertimeHourlyRate decimal.Decimal `json:"overtime_hourly_rate"`
	PIN                *string         `json:"pin,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if r.WeeklySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "weekly_salary", Message: "must be non-negative"})
	}
	if r.WorkDays < 1 || r.WorkDays > 7 {
		errs = append(errs, validator.ValidationError{Field: "work_days", Message: "must be between 1 and 7"})
	}
	if !validator.IsValidTimeOfDay(r.ScheduleIn) {
		errs = append(errs, validator.ValidationError{Field: "schedule_in", Message: "must be HH:MM"})
	}
	if !validator.IsValidTimeOfDay(r.ScheduleOut) {
		errs = append(errs, validator.ValidationError{Field: "schedule_out", Message: "must be HH:MM"})
	}
	if r.OvertimeHourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hourly_rate", Message: "must be non-negative"})
	}
	if r.PIN != nil && !validator.IsValidPIN(*r.PIN) {
		errs = append(errs, validator.ValidationError{Field: "pin", Message: "must be 4-6 digits"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                 string
	FullName           *string          `json:"full_name,omitempty"`
	WeeklySalary       *decimal.Decimal `json:"weekly_salary,omitempty"`
	WorkDays           *int             `json:"work_days,omitempty"`
	ScheduleIn         *string          `json:"schedule_in,omitempty"`
	ScheduleOut        *string          `json:"schedule_out,omitempty"`
	OvertimeHourlyRate *decimal.Decimal `json:"overtime_hourly_rate,omitempty"`
	Active             *bool            `json:"active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "must be a valid UUID"})
	}
	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not be empty"})
	}
	if r.WeeklySalary != nil && r.WeeklySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "weekly_salary", Message: "must be non-negative"})
	}
	if r.WorkDays != nil && (*r.WorkDays < 1 || *r.WorkDays > 7) {
		errs = append(errs, validator.ValidationError{Field: "work_days", Message: "must be between 1 and 7"})
	}
	if r.ScheduleIn != nil && !validator.IsValidTimeOfDay(*r.ScheduleIn) {
		errs = append(errs, validator.ValidationError{Field: "schedule_in", Message: "must be HH:MM"})
	}
	if r.ScheduleOut != nil && !validator.IsValidTimeOfDay(*r.ScheduleOut) {
		errs = append(errs, validator.ValidationError{Field: "schedule_out", Message: "must be HH:MM"})
	}
	if r.OvertimeHourlyRate != nil && r.OvertimeHourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hourly_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetPINRequest struct {
	ID  string
	PIN string `json:"pin"`
}

func (r *SetPINRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "must be a valid UUID"})
	}
	if !validator.IsValidPIN(r.PIN) {
		errs = append(errs, validator.ValidationError{Field: "pin", Message: "must be 4-6 digits"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
