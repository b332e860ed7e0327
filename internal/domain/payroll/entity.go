package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one saved worksheet cell: the amount applied for one
// concept, for one employee, in one period. Unique per (employee,
// period, concept); an amount of zero is represented by row absence.
type Transaction struct {
	ID         string
	EmployeeID string
	Period     string
	ConceptID  string
	Amount     decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
