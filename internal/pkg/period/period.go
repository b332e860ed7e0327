// Package period implements ISO 8601 year-week period identifiers
// ("2024-W23") used to address one payroll week, Monday through Sunday.
package period

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var ErrInvalidPeriod = errors.New("invalid period, expected YYYY-Www")

var periodRegex = regexp.MustCompile(`^(\d{4})-W(\d{2})$`)

// Period is one ISO week of one ISO year.
type Period struct {
	Year int
	Week int
}

// Parse parses a "YYYY-Www" identifier. The week number must exist in
// that ISO year (some years have 52 weeks, others 53).
func Parse(s string) (Period, error) {
	m := periodRegex.FindStringSubmatch(s)
	if m == nil {
		return Period{}, ErrInvalidPeriod
	}
	year, _ := strconv.Atoi(m[1])
	week, _ := strconv.Atoi(m[2])
	if week < 1 || week > weeksInYear(year) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{Year: year, Week: week}, nil
}

// Of returns the period containing the given date.
func Of(t time.Time) Period {
	year, week := t.ISOWeek()
	return Period{Year: year, Week: week}
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-W%02d", p.Year, p.Week)
}

// Monday returns the Monday that opens the period.
func (p Period) Monday() time.Time {
	// Jan 4 always falls in ISO week 1.
	jan4 := time.Date(p.Year, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, -(isoWeekday(jan4) - 1))
	return monday.AddDate(0, 0, (p.Week-1)*7)
}

// Dates returns the seven calendar dates of the period, Monday first.
func (p Period) Dates() []time.Time {
	dates := make([]time.Time, 7)
	monday := p.Monday()
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates
}

// isoWeekday maps Sunday from 0 to 7 so Monday is day 1.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func weeksInYear(year int) int {
	// Dec 28 always falls in the last ISO week of its year.
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}
