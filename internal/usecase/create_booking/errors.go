package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidRentalWindow возвращается, когда окно аренды нарушает тарифные правила
	// Конкретное нарушение доступно через errors.Is с ошибками пакета calculate_price.
	ErrInvalidRentalWindow = errors.New("create_booking: rental window violates pricing rules")

	// ErrWindowNotAvailable возвращается, когда даты уже заняты другой заявкой
	ErrWindowNotAvailable = errors.New("create_booking: rental window is not available")

	// ErrStartDateInPast возвращается при попытке начать аренду в прошлом
	ErrStartDateInPast = errors.New("create_booking: start date is in the past")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
