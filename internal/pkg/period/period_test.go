package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	p, err := Parse("2024-W23")
	require.NoError(t, err)
	assert.Equal(t, 2024, p.Year)
	assert.Equal(t, 23, p.Week)

	// 2020 has 53 ISO weeks, 2024 has 52.
	_, err = Parse("2020-W53")
	assert.NoError(t, err)
	_, err = Parse("2024-W53")
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	for _, s := range []string{"", "2024-23", "2024-W00", "2024-W54", "24-W23", "2024-w23", "2024-W5"} {
		_, err := Parse(s)
		assert.ErrorIs(t, err, ErrInvalidPeriod, "input %q", s)
	}
}

func TestDates(t *testing.T) {
	p, err := Parse("2024-W23")
	require.NoError(t, err)

	dates := p.Dates()
	require.Len(t, dates, 7)
	assert.Equal(t, "2024-06-03", dates[0].Format("2006-01-02"))
	assert.Equal(t, "2024-06-09", dates[6].Format("2006-01-02"))
	assert.Equal(t, time.Monday, dates[0].Weekday())
	assert.Equal(t, time.Sunday, dates[6].Weekday())
}

func TestDatesYearBoundary(t *testing.T) {
	// ISO week 1 of 2025 starts in calendar 2024.
	p, err := Parse("2025-W01")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-30", p.Dates()[0].Format("2006-01-02"))

	// Last week of 2020, a 53-week year.
	p, err = Parse("2020-W53")
	require.NoError(t, err)
	assert.Equal(t, "2020-12-28", p.Dates()[0].Format("2006-01-02"))
	assert.Equal(t, "2021-01-03", p.Dates()[6].Format("2006-01-02"))
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"2024-W01", "2024-W23", "2024-W52", "2020-W53", "2025-W01", "2026-W09"} {
		p, err := Parse(s)
		require.NoError(t, err)
		for i, d := range p.Dates() {
			got := Of(d)
			assert.Equal(t, p, got, "period %s day %d (%s)", s, i, d.Format("2006-01-02"))
		}
		assert.Equal(t, s, p.String())
	}
}

func TestOf(t *testing.T) {
	p := Of(time.Date(2024, time.June, 5, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-W23", p.String())

	// Jan 1 2027 belongs to ISO week 53 of 2026.
	p = Of(time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-W53", p.String())
}
