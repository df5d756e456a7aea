package classify_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfectdrive/rental-service/internal/domain"
	"github.com/perfectdrive/rental-service/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type stubRepo struct {
	occupancies []domain.ExistingBooking
	err         error
}

func (s *stubRepo) ListDayOccupancies(ctx context.Context, from, to time.Time) ([]domain.ExistingBooking, error) {
	return s.occupancies, s.err
}

func day(d int) time.Time {
	return time.Date(2026, time.February, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifyAvailability(t *testing.T) {
	t.Run("Empty calendar is fully open", func(t *testing.T) {
		uc := NewUseCase(&stubRepo{}, noopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{From: day(9), To: day(13)})
		require.NoError(t, err)
		require.Len(t, resp.Days, 5)

		for _, d := range resp.Days {
			assert.False(t, d.IsFullyBlocked)
			assert.Nil(t, d.MinStartTime)
			assert.Nil(t, d.MaxEndTime)
		}
	})

	t.Run("Middle day of a booking is fully blocked", func(t *testing.T) {
		uc := NewUseCase(&stubRepo{occupancies: []domain.ExistingBooking{
			{Date: day(10), StartTime: "10:00", EndTime: "10:00", IsStartDate: true},
			{Date: day(11), StartTime: "10:00", EndTime: "10:00"},
			{Date: day(12), StartTime: "10:00", EndTime: "10:00", IsEndDate: true},
		}}, noopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{From: day(9), To: day(13)})
		require.NoError(t, err)
		require.Len(t, resp.Days, 5)

		assert.False(t, resp.Days[0].IsFullyBlocked)
		assert.False(t, resp.Days[1].IsFullyBlocked)
		assert.True(t, resp.Days[2].IsFullyBlocked)
		assert.False(t, resp.Days[3].IsFullyBlocked)
		assert.False(t, resp.Days[4].IsFullyBlocked)
	})

	t.Run("Return day gets a minimum start time with the turnover gap", func(t *testing.T) {
		uc := NewUseCase(&stubRepo{occupancies: []domain.ExistingBooking{
			{Date: day(12), StartTime: "09:00", EndTime: "14:00", IsEndDate: true},
		}}, noopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{From: day(12), To: day(12)})
		require.NoError(t, err)
		require.Len(t, resp.Days, 1)

		d := resp.Days[0]
		assert.False(t, d.IsFullyBlocked)
		require.NotNil(t, d.MinStartTime)
		assert.Equal(t, types.TimeString("15:00"), *d.MinStartTime)
		assert.Nil(t, d.MaxEndTime)
	})

	t.Run("Departure day gets a maximum end time", func(t *testing.T) {
		uc := NewUseCase(&stubRepo{occupancies: []domain.ExistingBooking{
			{Date: day(12), StartTime: "16:00", EndTime: "10:00", IsStartDate: true},
		}}, noopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{From: day(12), To: day(12)})
		require.NoError(t, err)

		d := resp.Days[0]
		assert.False(t, d.IsFullyBlocked)
		assert.Nil(t, d.MinStartTime)
		require.NotNil(t, d.MaxEndTime)
		assert.Equal(t, types.TimeString("15:00"), *d.MaxEndTime)
	})

	t.Run("Same-day turnover blocks the day", func(t *testing.T) {
		uc := NewUseCase(&stubRepo{occupancies: []domain.ExistingBooking{
			{Date: day(12), StartTime: "09:00", EndTime: "10:00", IsEndDate: true},
			{Date: day(12), StartTime: "16:00", EndTime: "18:00", IsStartDate: true},
		}}, noopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{From: day(12), To: day(12)})
		require.NoError(t, err)

		assert.True(t, resp.Days[0].IsFullyBlocked)
		assert.Nil(t, resp.Days[0].MinStartTime)
		assert.Nil(t, resp.Days[0].MaxEndTime)
	})

	t.Run("Return close to midnight blocks new departures", func(t *testing.T) {
		uc := NewUseCase(&stubRepo{occupancies: []domain.ExistingBooking{
			{Date: day(12), StartTime: "09:00", EndTime: "23:30", IsEndDate: true},
		}}, noopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{From: day(12), To: day(12)})
		require.NoError(t, err)

		// 23:30 plus the gap runs past midnight, the day degrades to blocked
		d := resp.Days[0]
		assert.True(t, d.IsFullyBlocked)
		assert.Nil(t, d.MinStartTime)
	})
}

func TestClassifyAvailabilityValidation(t *testing.T) {
	uc := NewUseCase(&stubRepo{}, noopLogger{})

	t.Run("Nil request", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Reversed range", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{From: day(13), To: day(9)})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Range over the limit", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			From: day(1),
			To:   day(1).AddDate(0, 0, 120),
		})
		assert.ErrorIs(t, err, ErrRangeTooLarge)
	})

	t.Run("Repository failure", func(t *testing.T) {
		failing := NewUseCase(&stubRepo{err: errors.New("boom")}, noopLogger{})

		_, err := failing.Execute(context.Background(), &Request{From: day(9), To: day(13)})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
