package create_booking

import (
	"context"
	"time"

	"github.com/perfectdrive/rental-service/internal/domain"
	"github.com/perfectdrive/rental-service/internal/usecase/calculate_price"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)

	// ListDayOccupancies возвращает подневную раскладку активных бронирований
	// в диапазоне дат [from, to]; внутри транзакции строки блокируются
	ListDayOccupancies(ctx context.Context, from, to time.Time) ([]domain.ExistingBooking, error)
}

// PriceCalculator интерфейс расчета стоимости аренды
type PriceCalculator interface {
	Execute(ctx context.Context, req *calculate_price.Request) (*calculate_price.Response, error)
}

// Notifier интерфейс отправки уведомлений о новой заявке
type Notifier interface {
	SendAdminNewBooking(ctx context.Context, booking *domain.Booking) error
	SendCustomerReceived(ctx context.Context, booking *domain.Booking) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
