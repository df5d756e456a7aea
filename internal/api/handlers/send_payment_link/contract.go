package send_payment_link

import (
	"context"

	"github.com/perfectdrive/rental-service/internal/service/bookings/models"
)

type BookingsService interface {
	SendPaymentLink(ctx context.Context, id int64, req *models.SendPaymentLinkRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
