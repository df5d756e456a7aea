package calculate_price

import "errors"

var (
	// ErrDurationTooShort возвращается, когда аренда короче минимальной длительности
	ErrDurationTooShort = errors.New("rental duration is below the minimum")

	// ErrSaturdayDeparture возвращается при попытке начать аренду в субботу
	ErrSaturdayDeparture = errors.New("departure on Saturday is not allowed")

	// ErrSaturdayReturn возвращается при попытке вернуть автомобиль в субботу
	ErrSaturdayReturn = errors.New("return on Saturday is not allowed")

	// ErrWeekendMinimum возвращается, когда окно затрагивает выходные, но короче 48 часов
	ErrWeekendMinimum = errors.New("weekend rentals require a 48h minimum")

	// ErrSundayOnlyRental возвращается для однодневной аренды, начинающейся в воскресенье
	ErrSundayOnlyRental = errors.New("single-day rental starting on Sunday is not allowed")

	// ErrNoValidDecomposition возвращается, когда окно не удалось разложить на тарифы
	ErrNoValidDecomposition = errors.New("no valid tariff decomposition for the window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
)
