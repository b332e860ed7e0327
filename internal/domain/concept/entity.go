package concept

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	KindPerception = "PERCEPTION"
	KindDeduction  = "DEDUCTION"
)

// Concept is a configurable pay component applied on top of the base
// salary: a PERCEPTION adds to pay, a DEDUCTION subtracts. A zero
// FixedAmount means the amount is entered per period by the admin.
type Concept struct {
	ID          string
	Name        string
	Kind        string
	FixedAmount decimal.Decimal
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
