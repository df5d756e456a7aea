package get_availability

import (
	"time"

	"github.com/perfectdrive/rental-service/internal/domain"
	classifyAvailability "github.com/perfectdrive/rental-service/internal/usecase/classify_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	From string            `json:"from"`
	To   string            `json:"to"`
	Days []DayAvailability `json:"days"`
}

// DayAvailability доступность одного дня календаря
type DayAvailability struct {
	Date           string  `json:"date"`
	IsFullyBlocked bool    `json:"isFullyBlocked"`
	MinStartTime   *string `json:"minStartTime,omitempty"`
	MaxEndTime     *string `json:"maxEndTime,omitempty"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(fromStr, toStr string) (*classifyAvailability.Request, error) {
	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		return nil, err
	}
	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		return nil, err
	}

	return &classifyAvailability.Request{From: from, To: to}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *classifyAvailability.Response) *AvailabilityResponse {
	days := make([]DayAvailability, len(resp.Days))
	for i, d := range resp.Days {
		day := DayAvailability{
			Date:           d.Date.Format(domain.DateFormat),
			IsFullyBlocked: d.IsFullyBlocked,
		}
		if d.MinStartTime != nil {
			s := d.MinStartTime.String()
			day.MinStartTime = &s
		}
		if d.MaxEndTime != nil {
			s := d.MaxEndTime.String()
			day.MaxEndTime = &s
		}
		days[i] = day
	}

	return &AvailabilityResponse{
		From: resp.From.Format(domain.DateFormat),
		To:   resp.To.Format(domain.DateFormat),
		Days: days,
	}
}
