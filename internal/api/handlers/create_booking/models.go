package create_booking

import (
	"time"

	"github.com/perfectdrive/rental-service/internal/domain"
	createBooking "github.com/perfectdrive/rental-service/internal/usecase/create_booking"
	"github.com/perfectdrive/rental-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	StartDate string `json:"startDate"` // "2026-02-10"
	EndDate   string `json:"endDate"`
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`
	Plan      string `json:"plan"` // "standard" | "unlimited"

	CustomerFirstname string  `json:"customerFirstname"`
	CustomerLastname  string  `json:"customerLastname"`
	CustomerEmail     string  `json:"customerEmail"`
	CustomerPhone     string  `json:"customerPhone"`
	CustomerAddress   *string `json:"customerAddress,omitempty"`
	CustomerMessage   *string `json:"customerMessage,omitempty"`

	DocumentIDCard  string `json:"documentIdCard"`
	DocumentLicense string `json:"documentLicense"`
	DocumentProof   string `json:"documentProof"`

	DepositMethod string `json:"depositMethod"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		StartDate: startDate,
		EndDate:   endDate,
		StartTime: startTime,
		EndTime:   endTime,
		Plan:      domain.MileagePlan(r.Plan),

		CustomerFirstname: r.CustomerFirstname,
		CustomerLastname:  r.CustomerLastname,
		CustomerEmail:     r.CustomerEmail,
		CustomerPhone:     r.CustomerPhone,
		CustomerAddress:   r.CustomerAddress,
		CustomerMessage:   r.CustomerMessage,

		DocumentIDCard:  r.DocumentIDCard,
		DocumentLicense: r.DocumentLicense,
		DocumentProof:   r.DocumentProof,

		DepositMethod: r.DepositMethod,
	}, nil
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID         int64   `json:"id"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Plan       string  `json:"plan"`
	TotalPrice float64 `json:"totalPrice"`
	Days       int     `json:"days"`
	KmLimit    string  `json:"kmLimit"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"` // ISO 8601
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:         resp.ID,
		StartDate:  resp.StartDate.Format(domain.DateFormat),
		EndDate:    resp.EndDate.Format(domain.DateFormat),
		StartTime:  resp.StartTime.String(),
		EndTime:    resp.EndTime.String(),
		Plan:       resp.Plan,
		TotalPrice: resp.TotalPrice,
		Days:       resp.Days,
		KmLimit:    resp.KmLimit,
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
