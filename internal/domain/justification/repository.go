package justification

import (
	"context"
	"time"
)

// JustificationRepository defines data access methods for absence
// justifications. Upsert and Delete are keyed by (employee, date).
type JustificationRepository interface {
	// GetByEmployeeAndDate returns nil when no justification exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Justification, error)

	// Upsert creates or replaces the justification for (employee, date)
	Upsert(ctx context.Context, j Justification) error

	// Delete removes the justification for (employee, date) if present
	Delete(ctx context.Context, employeeID string, date time.Time) error
}
