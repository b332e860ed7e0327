package attendance

import (
	"context"
)

// PunchService defines business logic for attendance operations.
type PunchService interface {
	// CheckIn opens a new punch for the employee today.
	// Fails with ErrAlreadyCheckedIn while a previous punch is open.
	CheckIn(ctx context.Context, req CheckRequest) (PunchResponse, error)

	// CheckOut closes the employee's open punch.
	// Fails with ErrNothingToClose when there is none.
	CheckOut(ctx context.Context, req CheckRequest) (PunchResponse, error)

	// List retrieves punches for the admin history view
	List(ctx context.Context, filter PunchFilter) ([]PunchResponse, error)

	// Update corrects a punch record (admin)
	Update(ctx context.Context, req UpdatePunchRequest) (PunchResponse, error)

	// Delete removes a punch record (admin)
	Delete(ctx context.Context, id string) error
}
