package domain

import (
	"time"

	"github.com/perfectdrive/rental-service/pkg/types"
)

// ExistingBooking is the footprint of one booking on one calendar day
type ExistingBooking struct {
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsStartDate bool
	IsEndDate   bool
}

// DateAvailability is the classification of one calendar day against
// every active booking touching it
type DateAvailability struct {
	Date             time.Time
	IsFullyBlocked   bool
	ExistingBookings []ExistingBooking
}

// ClassifyDay derives the availability of a single day from the bookings
// touching it. A day is fully blocked when a booking passes through it
// (neither its start nor its end), or when one booking ends and another
// starts on it: a same-day turnover leaves no room for a third rental.
func ClassifyDay(date time.Time, bookings []ExistingBooking) DateAvailability {
	da := DateAvailability{
		Date:             date,
		ExistingBookings: bookings,
	}

	hasEnd := false
	hasStart := false

	for _, b := range bookings {
		if !b.IsStartDate && !b.IsEndDate {
			da.IsFullyBlocked = true
			return da
		}
		if b.IsEndDate {
			hasEnd = true
		}
		if b.IsStartDate {
			hasStart = true
		}
	}

	if hasEnd && hasStart {
		da.IsFullyBlocked = true
	}

	return da
}

// HasReturn returns true if any booking ends on the day
func (da DateAvailability) HasReturn() bool {
	for _, b := range da.ExistingBookings {
		if b.IsEndDate {
			return true
		}
	}
	return false
}

// HasDeparture returns true if any booking starts on the day
func (da DateAvailability) HasDeparture() bool {
	for _, b := range da.ExistingBookings {
		if b.IsStartDate {
			return true
		}
	}
	return false
}

// MinimumStartTime returns the earliest allowed pickup time on the day.
// A rental may start after the latest return plus the turnover gap.
// ok is false when no lower bound can be produced: either the day has no
// return, or the gap runs past midnight (check HasReturn to tell apart).
func (da DateAvailability) MinimumStartTime() (types.TimeString, bool) {
	var latestEnd types.TimeString

	for _, b := range da.ExistingBookings {
		if b.IsEndDate && b.EndTime.IsAfter(latestEnd) {
			latestEnd = b.EndTime
		}
	}

	if latestEnd.IsZero() {
		return "", false
	}

	min, err := latestEnd.AddMinutes(TurnoverGapMinutes)
	if err != nil {
		// Возврат слишком близко к полуночи, начать в этот день уже нельзя
		return "", false
	}

	return min, true
}

// MaximumEndTime returns the latest allowed return time on the day.
// A rental must end before the earliest departure minus the turnover gap.
// ok is false when no upper bound can be produced: either the day has no
// departure, or the gap runs before the start of day (check HasDeparture).
func (da DateAvailability) MaximumEndTime() (types.TimeString, bool) {
	var earliestStart types.TimeString

	for _, b := range da.ExistingBookings {
		if !b.IsStartDate {
			continue
		}
		if earliestStart.IsZero() || b.StartTime.IsBefore(earliestStart) {
			earliestStart = b.StartTime
		}
	}

	if earliestStart.IsZero() {
		return "", false
	}

	max, err := earliestStart.AddMinutes(-TurnoverGapMinutes)
	if err != nil {
		return "", false
	}

	return max, true
}

// StartableAt returns true if a rental may begin on the day at the given time.
// A return with no computable minimum (the gap runs past midnight) forbids
// any departure that day.
func (da DateAvailability) StartableAt(t types.TimeString) bool {
	if da.IsFullyBlocked {
		return false
	}

	min, ok := da.MinimumStartTime()
	if !ok {
		return !da.HasReturn()
	}

	return !t.IsBefore(min)
}

// EndableAt returns true if a rental may finish on the day at the given time.
// A departure with no computable maximum forbids any return that day.
func (da DateAvailability) EndableAt(t types.TimeString) bool {
	if da.IsFullyBlocked {
		return false
	}

	max, ok := da.MaximumEndTime()
	if !ok {
		return !da.HasDeparture()
	}

	return !t.IsAfter(max)
}

// RangeIsBookable checks the interior days of the window.
// A rental holds its interior days in full, so any occupancy there is a
// conflict. The endpoint days carry time-of-day constraints and are
// validated separately via StartableAt and EndableAt.
func RangeIsBookable(start, end time.Time, byDate map[string]DateAvailability) bool {
	days := DaysBetween(start, end)

	for i := 1; i < days; i++ {
		day := AddDays(start, i)

		da, ok := byDate[day.Format(DateFormat)]
		if !ok {
			continue
		}
		if da.IsFullyBlocked || len(da.ExistingBookings) > 0 {
			return false
		}
	}

	return true
}
