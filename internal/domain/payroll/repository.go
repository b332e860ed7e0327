package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

// TransactionRepository defines data access methods for saved payroll
// transactions.
type TransactionRepository interface {
	// ListByEmployeeAndPeriod retrieves the saved transactions of one
	// employee for one period
	ListByEmployeeAndPeriod(ctx context.Context, employeeID, period string) ([]Transaction, error)

	// Upsert creates the (employee, period, concept) row or updates its
	// amount when it already exists
	Upsert(ctx context.Context, employeeID, period, conceptID string, amount decimal.Decimal) error

	// Delete removes the (employee, period, concept) row if present
	Delete(ctx context.Context, employeeID, period, conceptID string) error
}
