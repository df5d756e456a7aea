package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда заявка не найдена
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotApprove возвращается, когда заявку нельзя подтвердить из её статуса
	ErrCannotApprove = errors.New("booking cannot be approved")

	// ErrCannotReject возвращается, когда заявку нельзя отклонить из её статуса
	ErrCannotReject = errors.New("booking cannot be rejected")

	// ErrCannotSendPaymentLink возвращается, когда ссылку на оплату отправить нельзя
	ErrCannotSendPaymentLink = errors.New("payment link cannot be sent for this booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
