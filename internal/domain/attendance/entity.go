package attendance

import (
	"time"
)

type Punch struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	CreatedAt  time.Time

	// Joined for admin listings
	EmployeeName *string
}

// Open reports whether the punch has a check-in but no check-out yet.
func (p Punch) Open() bool {
	return p.CheckIn != nil && p.CheckOut == nil
}
