package classify_availability

import (
	"context"
	"time"

	"github.com/perfectdrive/rental-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListDayOccupancies возвращает подневную раскладку активных бронирований
	// в диапазоне дат [from, to]
	ListDayOccupancies(ctx context.Context, from, to time.Time) ([]domain.ExistingBooking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
