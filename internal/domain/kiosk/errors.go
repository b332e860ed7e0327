package kiosk

import "errors"

var (
	ErrInvalidToken = errors.New("kiosk token invalid or expired")
	ErrInvalidPIN   = errors.New("invalid kiosk PIN")
	ErrNoPIN        = errors.New("employee has no kiosk PIN configured")
)
