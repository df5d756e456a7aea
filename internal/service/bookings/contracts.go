package bookings

import (
	"context"

	"github.com/perfectdrive/rental-service/internal/domain"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Reject(ctx context.Context, id int64, reason string) error
	SetPaymentLink(ctx context.Context, id int64, link string) error
	Delete(ctx context.Context, id int64) error
}

// Mailer интерфейс отправки писем клиентам
type Mailer interface {
	SendCustomerConfirmed(ctx context.Context, booking *domain.Booking) error
	SendCustomerRejected(ctx context.Context, booking *domain.Booking) error
	SendCustomerPaymentLink(ctx context.Context, booking *domain.Booking) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
