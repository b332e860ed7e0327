package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                 string
	FullName           string
	WeeklySalary       decimal.Decimal
	WorkDays           int
	ScheduleIn         string
	ScheduleOut        string
	OvertimeHourlyRate decimal.Decimal
	Active             bool
	CardUUID           string
	PINHash            *string
	KioskToken         *string
	KioskTokenExpiry   *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ScheduleOutOn anchors the official exit time-of-day onto a calendar
// date, producing the scheduled checkout instant for that date.
func (e Employee) ScheduleOutOn(date time.Time) time.Time {
	t, err := time.Parse("15:04", e.ScheduleOut)
	if err != nil {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

// ScheduleInOn anchors the official entry time-of-day onto a calendar date.
func (e Employee) ScheduleInOn(date time.Time) time.Time {
	t, err := time.Parse("15:04", e.ScheduleIn)
	if err != nil {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

// DailyRate is the weekly salary divided by contracted work days, used
// to price unjustified absences.
func (e Employee) DailyRate() decimal.Decimal {
	if e.WorkDays <= 0 {
		return decimal.Zero
	}
	return e.WeeklySalary.Div(decimal.NewFromInt(int64(e.WorkDays)))
}
