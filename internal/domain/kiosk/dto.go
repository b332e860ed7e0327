package kiosk

import (
	"time"

	"github.com/checadormx/checador-backend-go/internal/pkg/validator"
)

const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// CardResponse is what the digital card page displays: the rotating
// token plus the seconds left before the next rotation.
type CardResponse struct {
	EmployeeName string    `json:"employee_name"`
	Token        string    `json:"token"`
	ExpiresAt    time.Time `json:"expires_at"`
	TTLSeconds   int       `json:"ttl_seconds"`
}

type PunchRequest struct {
	// Token auth (QR card) or EmployeeID+PIN auth; exactly one pair.
	Token      string `json:"token,omitempty"`
	EmployeeID string `json:"employee_id,omitempty"`
	PIN        string `json:"pin,omitempty"`
	Direction  string `json:"direction"`
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Direction != DirectionIn && r.Direction != DirectionOut {
		errs = append(errs, validator.ValidationError{Field: "direction", Message: "must be 'in' or 'out'"})
	}
	byToken := !validator.IsEmpty(r.Token)
	byPIN := !validator.IsEmpty(r.EmployeeID) || !validator.IsEmpty(r.PIN)
	switch {
	case byToken && byPIN:
		errs = append(errs, validator.ValidationError{Field: "token", Message: "cannot combine token and PIN auth"})
	case byToken:
		// ok
	case byPIN:
		if !validator.IsValidUUID(r.EmployeeID) {
			errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
		}
		if !validator.IsValidPIN(r.PIN) {
			errs = append(errs, validator.ValidationError{Field: "pin", Message: "must be 4-6 digits"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "token", Message: "token or employee_id+pin is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchResult struct {
	EmployeeName string    `json:"employee_name"`
	Direction    string    `json:"direction"`
	At           time.Time `json:"at"`
}
