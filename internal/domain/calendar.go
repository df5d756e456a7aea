package domain

import (
	"time"

	"github.com/perfectdrive/rental-service/pkg/types"
)

// DaysBetween returns the number of whole calendar days between two dates.
// Times of day are ignored; only the calendar date matters.
func DaysBetween(start, end time.Time) int {
	s := truncateToDate(start)
	e := truncateToDate(end)

	return int(e.Sub(s).Hours() / 24)
}

// AddDays returns the date shifted by n calendar days
func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// CombineDateTime merges a calendar date with an HH:MM wall-clock time
func CombineDateTime(date time.Time, t types.TimeString) time.Time {
	h, m := t.HourMinute()

	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location())
}

// IsSaturday returns true if the date falls on a Saturday
func IsSaturday(date time.Time) bool {
	return date.Weekday() == time.Saturday
}

// IsSunday returns true if the date falls on a Sunday
func IsSunday(date time.Time) bool {
	return date.Weekday() == time.Sunday
}

// IsFriday returns true if the date falls on a Friday
func IsFriday(date time.Time) bool {
	return date.Weekday() == time.Friday
}

// IsMonday returns true if the date falls on a Monday
func IsMonday(date time.Time) bool {
	return date.Weekday() == time.Monday
}

// IsWeekendDay returns true for Saturday and Sunday
func IsWeekendDay(date time.Time) bool {
	return IsSaturday(date) || IsSunday(date)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
