package classify_availability

import (
	"context"
	"fmt"

	"github.com/perfectdrive/rental-service/internal/domain"
	"github.com/perfectdrive/rental-service/pkg/ptr"
)

// maxRangeDays предел размера запрашиваемого диапазона
// Витрина показывает максимум три месяца календаря.
const maxRangeDays = 93

// UseCase use case раскладки доступности календаря по дням
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет классификацию доступности для диапазона [From, To]
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ClassifyAvailability: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("ClassifyAvailability: from=%s, to=%s",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	occupancies, err := uc.bookingRepo.ListDayOccupancies(ctx, req.From, req.To)
	if err != nil {
		uc.logger.Error("ClassifyAvailability: failed to list day occupancies: %v", err)
		return nil, fmt.Errorf("%w: failed to list day occupancies: %v", ErrInternal, err)
	}

	byDate := make(map[string][]domain.ExistingBooking)
	for _, occ := range occupancies {
		key := occ.Date.Format(domain.DateFormat)
		byDate[key] = append(byDate[key], occ)
	}

	total := domain.DaysBetween(req.From, req.To)
	days := make([]DayAvailability, 0, total+1)

	for i := 0; i <= total; i++ {
		date := domain.AddDays(req.From, i)
		da := domain.ClassifyDay(date, byDate[date.Format(domain.DateFormat)])

		day := DayAvailability{
			Date:           da.Date,
			IsFullyBlocked: da.IsFullyBlocked,
		}

		if !da.IsFullyBlocked {
			minStart, minOK := da.MinimumStartTime()
			maxEnd, maxOK := da.MaximumEndTime()

			// Граница не вычислилась, хотя возврат/выезд в этот день есть:
			// интервал выходит за пределы суток, день считаем занятым
			if (!minOK && da.HasReturn()) || (!maxOK && da.HasDeparture()) {
				day.IsFullyBlocked = true
			} else {
				if minOK {
					day.MinStartTime = ptr.Ptr(minStart)
				}
				if maxOK {
					day.MaxEndTime = ptr.Ptr(maxEnd)
				}

				// Обе границы есть, но интервал схлопнулся
				if minOK && maxOK && minStart.IsAfter(maxEnd) {
					day.IsFullyBlocked = true
					day.MinStartTime = nil
					day.MaxEndTime = nil
				}
			}
		}

		days = append(days, day)
	}

	uc.logger.Info("ClassifyAvailability: classified %d days", len(days))

	return &Response{
		From: req.From,
		To:   req.To,
		Days: days,
	}, nil
}

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}
	if req.To.Before(req.From) {
		return fmt.Errorf("%w: to is before from", ErrInvalidInput)
	}
	if domain.DaysBetween(req.From, req.To) > maxRangeDays {
		return fmt.Errorf("%w: maximum %d days", ErrRangeTooLarge, maxRangeDays)
	}
	return nil
}
