package reject_booking

import (
	"context"

	"github.com/perfectdrive/rental-service/internal/service/bookings/models"
)

type BookingsService interface {
	Reject(ctx context.Context, id int64, req *models.RejectBookingRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
