package calculate_price

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfectdrive/rental-service/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// February 2026: Mon 9, Tue 10, Wed 11, Thu 12, Fri 13, Sat 14, Sun 15, Mon 16, Tue 17
func at(day, hour int) time.Time {
	return time.Date(2026, time.February, day, hour, 0, 0, 0, time.UTC)
}

func execute(t *testing.T, start, end time.Time, plan domain.MileagePlan) *Response {
	t.Helper()

	uc := NewUseCase(noopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{Start: start, End: end, Plan: plan})
	require.NoError(t, err)
	require.NotNil(t, resp)

	return resp
}

func TestQuoteWeekdayRentals(t *testing.T) {
	t.Run("Three weekdays", func(t *testing.T) {
		// Tue 10 -> Fri 13
		resp := execute(t, at(10, 9), at(13, 9), domain.PlanStandard)
		assert.NoError(t, resp.Err)
		assert.Equal(t, 180.0, resp.TotalPrice)
		assert.Equal(t, 3, resp.Days)
		assert.Equal(t, "450 km", resp.KmLimit)
	})

	t.Run("Single weekday", func(t *testing.T) {
		// Mon 9 08:00 -> Tue 10 06:00, 22 hours
		resp := execute(t, at(9, 8), at(10, 6), domain.PlanStandard)
		assert.NoError(t, resp.Err)
		assert.Equal(t, 60.0, resp.TotalPrice)
		assert.Equal(t, 1, resp.Days)
		assert.Equal(t, "150 km", resp.KmLimit)
	})

	t.Run("Same calendar day counts as one day", func(t *testing.T) {
		// Tue 10 01:00 -> Tue 10 23:00, 22 hours
		resp := execute(t, at(10, 1), at(10, 23), domain.PlanStandard)
		assert.NoError(t, resp.Err)
		assert.Equal(t, 60.0, resp.TotalPrice)
		assert.Equal(t, 1, resp.Days)
	})

	t.Run("Unlimited plan", func(t *testing.T) {
		resp := execute(t, at(10, 9), at(13, 9), domain.PlanUnlimited)
		assert.NoError(t, resp.Err)
		assert.Equal(t, 270.0, resp.TotalPrice)
		assert.Equal(t, "Illimité", resp.KmLimit)
	})
}

func TestQuoteWeekendPackages(t *testing.T) {
	t.Run("Friday to Sunday bills the 72h package", func(t *testing.T) {
		resp := execute(t, at(13, 9), at(15, 9), domain.PlanStandard)
		assert.NoError(t, resp.Err)
		assert.Equal(t, 200.0, resp.TotalPrice)
		assert.Equal(t, 2, resp.Days)
		assert.Equal(t, "400 km", resp.KmLimit)
	})

	t.Run("Friday to Monday", func(t *testing.T) {
		resp := execute(t, at(13, 9), at(16, 9), domain.PlanStandard)
		assert.NoError(t, resp.Err)
		assert.Equal(t, 200.0, resp.TotalPrice)
		assert.Equal(t, 3, resp.Days)
		assert.Equal(t, "400 km", resp.KmLimit)
	})

	t.Run("Friday to Monday unlimited", func(t *testing.T) {
		resp := execute(t, at(13, 9), at(16, 9), domain.PlanUnlimited)
		assert.NoError(t, resp.Err)
		assert.Equal(t, 280.0, resp.TotalPrice)
		assert.Equal(t, "Illimité", resp.KmLimit)
	})
}

func TestQuoteMixedWindows(t *testing.T) {
	t.Run("Tuesday to Sunday absorbs a weekday into the 72h package", func(t *testing.T) {
		// Tue 10 -> Sun 15: two weekday units plus the 72h weekend package
		resp := execute(t, at(10, 9), at(15, 9), domain.PlanStandard)
		assert.NoError(t, resp.Err)
		assert.Equal(t, 320.0, resp.TotalPrice)
		assert.Equal(t, 5, resp.Days)
		assert.Equal(t, "700 km", resp.KmLimit)
	})

	t.Run("Friday to Tuesday picks the cheapest decomposition", func(t *testing.T) {
		// Fri 13 -> Tue 17: 72h package plus one weekday beats 48h plus two
		resp := execute(t, at(13, 9), at(17, 9), domain.PlanStandard)
		assert.NoError(t, resp.Err)
		assert.Equal(t, 260.0, resp.TotalPrice)
		assert.Equal(t, 4, resp.Days)
		assert.Equal(t, "550 km", resp.KmLimit)
	})

	t.Run("Sunday to Tuesday falls back to the mixed rate", func(t *testing.T) {
		// Sun 15 -> Tue 17: no Friday in the window, no package fits
		resp := execute(t, at(15, 9), at(17, 9), domain.PlanStandard)
		assert.NoError(t, resp.Err)
		assert.Equal(t, 140.0, resp.TotalPrice)
		assert.Equal(t, 2, resp.Days)
		assert.Equal(t, "300 km", resp.KmLimit)
	})

	t.Run("Tuesday to Sunday unlimited", func(t *testing.T) {
		resp := execute(t, at(10, 9), at(15, 9), domain.PlanUnlimited)
		assert.NoError(t, resp.Err)
		assert.Equal(t, 460.0, resp.TotalPrice)
		assert.Equal(t, "Illimité", resp.KmLimit)
	})
}

func TestQuoteRejections(t *testing.T) {
	t.Run("Below minimum duration", func(t *testing.T) {
		resp := execute(t, at(10, 9), at(10, 19), domain.PlanStandard)
		assert.ErrorIs(t, resp.Err, ErrDurationTooShort)
		assert.Zero(t, resp.TotalPrice)
	})

	t.Run("Saturday departure", func(t *testing.T) {
		resp := execute(t, at(14, 9), at(16, 9), domain.PlanStandard)
		assert.ErrorIs(t, resp.Err, ErrSaturdayDeparture)
		assert.Zero(t, resp.TotalPrice)
	})

	t.Run("Saturday return", func(t *testing.T) {
		resp := execute(t, at(13, 9), at(14, 9), domain.PlanStandard)
		assert.ErrorIs(t, resp.Err, ErrSaturdayReturn)
		assert.Zero(t, resp.TotalPrice)
	})

	t.Run("Saturday return wins over the five-weekday package", func(t *testing.T) {
		// Mon 9 -> Sat 14
		resp := execute(t, at(9, 9), at(14, 9), domain.PlanStandard)
		assert.ErrorIs(t, resp.Err, ErrSaturdayReturn)
	})

	t.Run("Single day starting on Sunday", func(t *testing.T) {
		// Sun 15 10:00 -> Mon 16 08:00, 22 hours
		resp := execute(t, at(15, 10), at(16, 8), domain.PlanStandard)
		assert.ErrorIs(t, resp.Err, ErrSundayOnlyRental)
		assert.Zero(t, resp.TotalPrice)
	})
}

func TestQuoteCheaperDecompositionNeverLosesToFallback(t *testing.T) {
	// Every window spanning a weekend must not cost more than the
	// per-day mixed rate applied to the whole window
	for days := 2; days <= 9; days++ {
		start := at(10, 9) // Tuesday
		end := start.AddDate(0, 0, days)

		if domain.IsSaturday(start) || domain.IsSaturday(end) {
			continue
		}

		resp := execute(t, start, end, domain.PlanStandard)
		if resp.Err != nil {
			continue
		}

		fallback := float64(days) * domain.MixedFallbackRate(domain.PlanStandard).Price
		assert.LessOrEqual(t, resp.TotalPrice, fallback, "days=%d", days)
	}
}

func TestValidateRequest(t *testing.T) {
	uc := NewUseCase(noopLogger{})

	t.Run("Nil request", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Unknown plan", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			Start: at(10, 9),
			End:   at(13, 9),
			Plan:  "premium",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("End before start", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			Start: at(13, 9),
			End:   at(10, 9),
			Plan:  domain.PlanStandard,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
