package kiosk

import (
	"context"
)

// KioskService drives the self-service clock terminal: the rotating
// digital card and token/PIN authenticated punches.
type KioskService interface {
	// IssueToken rotates the kiosk token for the employee behind a card
	// UUID. The previous token stops validating immediately, even if it
	// had time left.
	IssueToken(ctx context.Context, cardUUID string) (CardResponse, error)

	// CardBarcode rotates the token and renders it as a Code128 PNG for
	// the digital card display.
	CardBarcode(ctx context.Context, cardUUID string) ([]byte, error)

	// Punch authenticates by token or employee PIN and records the
	// check-in or check-out.
	Punch(ctx context.Context, req PunchRequest) (PunchResult, error)
}
