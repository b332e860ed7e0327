package employee

import (
	"context"
	"time"
)

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	// Create creates a new employee record
	Create(ctx context.Context, e Employee) (Employee, error)

	// GetByID retrieves an employee by internal ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByCardUUID retrieves an employee by the public card identifier
	GetByCardUUID(ctx context.Context, cardUUID string) (Employee, error)

	// GetByKioskToken retrieves the employee holding an unexpired kiosk token
	GetByKioskToken(ctx context.Context, token string, now time.Time) (Employee, error)

	// List retrieves employees ordered by name, optionally active only
	List(ctx context.Context, activeOnly bool) ([]Employee, error)

	// Update updates an existing employee record
	Update(ctx context.Context, e Employee) error

	// SetPINHash replaces the stored kiosk PIN hash
	SetPINHash(ctx context.Context, id string, pinHash string) error

	// SetKioskToken overwrites the kiosk token and its expiry.
	// The previous token stops validating immediately.
	SetKioskToken(ctx context.Context, id string, token string, expiry time.Time) error

	// Delete removes an employee record
	Delete(ctx context.Context, id string) error
}
