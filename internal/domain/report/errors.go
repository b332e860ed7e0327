package report

import "errors"

var (
	ErrInvalidPeriod = errors.New("invalid report period, expected YYYY-Www")
)
