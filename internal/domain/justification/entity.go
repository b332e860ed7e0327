package justification

import (
	"time"
)

// DefaultReason is recorded when an absence is marked justified
// without an explicit reason.
const DefaultReason = "Justificada"

// Justification excuses one employee's absence on one date, removing
// its pay deduction. Unique per (employee, date).
type Justification struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Reason     string
	CreatedAt  time.Time
}
