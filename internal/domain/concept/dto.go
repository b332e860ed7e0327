package concept

import (
	"time"

	"github.com/checadormx/checador-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ConceptResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Kind        string          `json:"kind"`
	FixedAmount decimal.Decimal `json:"fixed_amount"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func ToResponse(c Concept) ConceptResponse {
	return ConceptResponse{
		ID:          c.ID,
		Name:        c.Name,
		Kind:        c.Kind,
		FixedAmount: c.FixedAmount,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type CreateConceptRequest struct {
	Name        string          `json:"name"`
	Kind        string          `json:"kind"`
	FixedAmount decimal.Decimal `json:"fixed_amount"`
}

func (r *CreateConceptRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Kind != KindPerception && r.Kind != KindDeduction {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 'PERCEPTION' or 'DEDUCTION'"})
	}
	if r.FixedAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "fixed_amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateConceptRequest struct {
	ID          string
	Name        *string          `json:"name,omitempty"`
	FixedAmount *decimal.Decimal `json:"fixed_amount,omitempty"`
	Active      *bool            `json:"active,omitempty"`
}

func (r *UpdateConceptRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "must be a valid UUID"})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.FixedAmount != nil && r.FixedAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "fixed_amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
