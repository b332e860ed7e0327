package attendance

import (
	"context"
	"time"
)

// PunchRepository defines data access methods for attendance punches.
type PunchRepository interface {
	// CreateOpen inserts a new punch with a check-in and no check-out.
	// The insert is conditional: it fails with ErrAlreadyCheckedIn when
	// the employee already has an open punch, so two kiosks racing on
	// the same employee cannot both open one.
	CreateOpen(ctx context.Context, employeeID string, date time.Time, checkIn time.Time) (Punch, error)

	// CloseOpen sets the check-out on the employee's open punch.
	// Returns ErrNothingToClose when no open punch exists.
	CloseOpen(ctx context.Context, employeeID string, checkOut time.Time) (Punch, error)

	// GetByID retrieves a punch by ID
	GetByID(ctx context.Context, id string) (Punch, error)

	// ListByEmployeeAndDate retrieves the punches of one employee on one
	// date ordered by check-in time (creation order as tiebreak), oldest
	// first. The last element is the authoritative punch for the date.
	ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]Punch, error)

	// List retrieves punches with optional date/employee filters, most
	// recent first, with employee names joined for the admin table.
	List(ctx context.Context, filter PunchFilter) ([]Punch, error)

	// ListRecent retrieves the latest punch events for the dashboard feed.
	ListRecent(ctx context.Context, limit int) ([]Punch, error)

	// Update replaces a punch's date and times (admin correction)
	Update(ctx context.Context, p Punch) error

	// Delete removes a punch record (admin)
	Delete(ctx context.Context, id string) error
}
