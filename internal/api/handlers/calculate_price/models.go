package calculate_price

import (
	"errors"
	"time"

	"github.com/perfectdrive/rental-service/internal/domain"
	calculatePrice "github.com/perfectdrive/rental-service/internal/usecase/calculate_price"
	"github.com/perfectdrive/rental-service/pkg/ptr"
)

// QuoteResponse HTTP response model
// Нарушение правил аренды не является ошибкой HTTP: возвращается 200
// с заполненным полем error, чтобы витрина показала сообщение клиенту.
type QuoteResponse struct {
	TotalPrice float64 `json:"totalPrice"`
	Days       int     `json:"days"`
	KmLimit    string  `json:"kmLimit"`
	Error      *string `json:"error,omitempty"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(startDateStr, startTimeStr, endDateStr, endTimeStr, planStr string) (*calculatePrice.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		return nil, err
	}
	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		return nil, err
	}

	startTime, err := time.Parse(domain.TimeFormat, startTimeStr)
	if err != nil {
		return nil, err
	}
	endTime, err := time.Parse(domain.TimeFormat, endTimeStr)
	if err != nil {
		return nil, err
	}

	return &calculatePrice.Request{
		Start: time.Date(startDate.Year(), startDate.Month(), startDate.Day(),
			startTime.Hour(), startTime.Minute(), 0, 0, time.UTC),
		End: time.Date(endDate.Year(), endDate.Month(), endDate.Day(),
			endTime.Hour(), endTime.Minute(), 0, 0, time.UTC),
		Plan: domain.MileagePlan(planStr),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculatePrice.Response) *QuoteResponse {
	if resp.Err != nil {
		return &QuoteResponse{Error: ptr.Ptr(userMessage(resp.Err))}
	}

	return &QuoteResponse{
		TotalPrice: resp.TotalPrice,
		Days:       resp.Days,
		KmLimit:    resp.KmLimit,
	}
}

// userMessage переводит бизнес-ошибку в сообщение для витрины
func userMessage(err error) string {
	switch {
	case errors.Is(err, calculatePrice.ErrDurationTooShort):
		return msgDurationTooShort
	case errors.Is(err, calculatePrice.ErrSaturdayDeparture):
		return msgSaturdayDeparture
	case errors.Is(err, calculatePrice.ErrSaturdayReturn):
		return msgSaturdayReturn
	case errors.Is(err, calculatePrice.ErrSundayOnlyRental):
		return msgSundayOnlyRental
	case errors.Is(err, calculatePrice.ErrWeekendMinimum):
		return msgWeekendMinimum
	default:
		return msgNoValidDecomposition
	}
}
