package classify_availability

import (
	"time"

	"github.com/perfectdrive/rental-service/pkg/types"
)

// Request входные данные запроса доступности календаря
type Request struct {
	From time.Time
	To   time.Time
}

// DayAvailability доступность одного календарного дня
type DayAvailability struct {
	Date           time.Time
	IsFullyBlocked bool

	// Нижняя граница времени начала аренды в этот день (nil — ограничения нет)
	MinStartTime *types.TimeString

	// Верхняя граница времени окончания аренды в этот день (nil — ограничения нет)
	MaxEndTime *types.TimeString
}

// Response раскладка доступности по дням диапазона
type Response struct {
	From time.Time
	To   time.Time
	Days []DayAvailability
}
