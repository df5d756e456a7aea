package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfectdrive/rental-service/pkg/types"
)

func febDay(d int) time.Time {
	return time.Date(2026, time.February, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifyDay(t *testing.T) {
	t.Run("No bookings leaves the day open", func(t *testing.T) {
		da := ClassifyDay(febDay(10), nil)
		assert.False(t, da.IsFullyBlocked)
	})

	t.Run("Middle day of a booking blocks the day", func(t *testing.T) {
		da := ClassifyDay(febDay(11), []ExistingBooking{
			{Date: febDay(11), StartTime: "10:00", EndTime: "10:00"},
		})
		assert.True(t, da.IsFullyBlocked)
	})

	t.Run("Start-only or end-only day stays open", func(t *testing.T) {
		start := ClassifyDay(febDay(10), []ExistingBooking{
			{Date: febDay(10), StartTime: "10:00", EndTime: "18:00", IsStartDate: true},
		})
		assert.False(t, start.IsFullyBlocked)

		end := ClassifyDay(febDay(12), []ExistingBooking{
			{Date: febDay(12), StartTime: "10:00", EndTime: "18:00", IsEndDate: true},
		})
		assert.False(t, end.IsFullyBlocked)
	})

	t.Run("Turnover from two bookings blocks the day", func(t *testing.T) {
		da := ClassifyDay(febDay(12), []ExistingBooking{
			{Date: febDay(12), StartTime: "08:00", EndTime: "10:00", IsEndDate: true},
			{Date: febDay(12), StartTime: "16:00", EndTime: "18:00", IsStartDate: true},
		})
		assert.True(t, da.IsFullyBlocked)
	})
}

func TestDayTimeBounds(t *testing.T) {
	t.Run("Return at 14:00 allows pickup from 15:00", func(t *testing.T) {
		da := ClassifyDay(febDay(12), []ExistingBooking{
			{Date: febDay(12), StartTime: "09:00", EndTime: "14:00", IsEndDate: true},
		})

		min, ok := da.MinimumStartTime()
		require.True(t, ok)
		assert.Equal(t, types.TimeString("15:00"), min)

		assert.False(t, da.StartableAt("14:30"))
		assert.True(t, da.StartableAt("15:00"))
		assert.True(t, da.StartableAt("16:00"))
	})

	t.Run("Latest of several returns wins", func(t *testing.T) {
		da := ClassifyDay(febDay(12), []ExistingBooking{
			{Date: febDay(12), StartTime: "07:00", EndTime: "09:00", IsEndDate: true},
			{Date: febDay(12), StartTime: "08:00", EndTime: "11:00", IsEndDate: true},
		})

		min, ok := da.MinimumStartTime()
		require.True(t, ok)
		assert.Equal(t, types.TimeString("12:00"), min)
	})

	t.Run("Departure at 16:00 requires return by 15:00", func(t *testing.T) {
		da := ClassifyDay(febDay(12), []ExistingBooking{
			{Date: febDay(12), StartTime: "16:00", EndTime: "10:00", IsStartDate: true},
		})

		max, ok := da.MaximumEndTime()
		require.True(t, ok)
		assert.Equal(t, types.TimeString("15:00"), max)

		assert.True(t, da.EndableAt("15:00"))
		assert.False(t, da.EndableAt("15:30"))
	})

	t.Run("Return near midnight forbids any pickup", func(t *testing.T) {
		da := ClassifyDay(febDay(12), []ExistingBooking{
			{Date: febDay(12), StartTime: "09:00", EndTime: "23:30", IsEndDate: true},
		})

		_, ok := da.MinimumStartTime()
		assert.False(t, ok)
		assert.False(t, da.StartableAt("23:45"))
	})

	t.Run("No bookings means no bounds", func(t *testing.T) {
		da := ClassifyDay(febDay(12), nil)

		_, ok := da.MinimumStartTime()
		assert.False(t, ok)
		_, ok = da.MaximumEndTime()
		assert.False(t, ok)

		assert.True(t, da.StartableAt("00:00"))
		assert.True(t, da.EndableAt("23:59"))
	})
}

func TestRangeIsBookable(t *testing.T) {
	t.Run("Empty calendar is bookable", func(t *testing.T) {
		assert.True(t, RangeIsBookable(febDay(10), febDay(13), nil))
	})

	t.Run("Blocked interior day prevents booking", func(t *testing.T) {
		byDate := map[string]DateAvailability{
			"2026-02-11": ClassifyDay(febDay(11), []ExistingBooking{
				{Date: febDay(11), StartTime: "10:00", EndTime: "10:00"},
			}),
		}
		assert.False(t, RangeIsBookable(febDay(10), febDay(13), byDate))
	})

	t.Run("Busy endpoint days do not prevent booking", func(t *testing.T) {
		// Возврат в день начала и выезд в день окончания: решают границы времени
		byDate := map[string]DateAvailability{
			"2026-02-10": ClassifyDay(febDay(10), []ExistingBooking{
				{Date: febDay(10), StartTime: "06:00", EndTime: "07:00", IsEndDate: true},
			}),
			"2026-02-13": ClassifyDay(febDay(13), []ExistingBooking{
				{Date: febDay(13), StartTime: "18:00", EndTime: "20:00", IsStartDate: true},
			}),
		}
		assert.True(t, RangeIsBookable(febDay(10), febDay(13), byDate))
	})

	t.Run("Interior departure or return blocks the range", func(t *testing.T) {
		byDate := map[string]DateAvailability{
			"2026-02-11": ClassifyDay(febDay(11), []ExistingBooking{
				{Date: febDay(11), StartTime: "08:00", EndTime: "10:00", IsEndDate: true},
				{Date: febDay(11), StartTime: "16:00", EndTime: "18:00", IsStartDate: true},
			}),
		}
		assert.False(t, RangeIsBookable(febDay(10), febDay(13), byDate))
	})
}
