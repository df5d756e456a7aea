package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{"Same day", date(2026, time.February, 10), date(2026, time.February, 10), 0},
		{"Next day", date(2026, time.February, 10), date(2026, time.February, 11), 1},
		{"Across a week", date(2026, time.February, 10), date(2026, time.February, 17), 7},
		{"Across a month boundary", date(2026, time.January, 30), date(2026, time.February, 2), 3},
		{"Reversed gives negative", date(2026, time.February, 12), date(2026, time.February, 10), -2},
		{"Time of day is ignored", date(2026, time.February, 10).Add(23 * time.Hour), date(2026, time.February, 11), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysBetween(tt.start, tt.end))
		})
	}
}

func TestWeekdayHelpers(t *testing.T) {
	// February 2026: Fri 13, Sat 14, Sun 15, Mon 16
	assert.True(t, IsFriday(date(2026, time.February, 13)))
	assert.True(t, IsSaturday(date(2026, time.February, 14)))
	assert.True(t, IsSunday(date(2026, time.February, 15)))
	assert.True(t, IsMonday(date(2026, time.February, 16)))

	assert.True(t, IsWeekendDay(date(2026, time.February, 14)))
	assert.True(t, IsWeekendDay(date(2026, time.February, 15)))
	assert.False(t, IsWeekendDay(date(2026, time.February, 13)))
	assert.False(t, IsWeekendDay(date(2026, time.February, 16)))
}

func TestCombineDateTime(t *testing.T) {
	combined := CombineDateTime(date(2026, time.February, 10), "09:30")

	assert.Equal(t, 2026, combined.Year())
	assert.Equal(t, time.February, combined.Month())
	assert.Equal(t, 10, combined.Day())
	assert.Equal(t, 9, combined.Hour())
	assert.Equal(t, 30, combined.Minute())
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, date(2026, time.March, 2), AddDays(date(2026, time.February, 28), 2))
	assert.Equal(t, date(2026, time.February, 8), AddDays(date(2026, time.February, 10), -2))
}
