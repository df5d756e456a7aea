package models

import (
	"errors"
	"time"

	"github.com/perfectdrive/rental-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение списка заявок с фильтрацией
type ListBookingsRequest struct {
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	IncludeRejected bool       `json:"includeRejected,omitempty"` // Включить отклонённые заявки
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeRejected: r.IncludeRejected,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// RejectBookingRequest запрос на отклонение заявки
type RejectBookingRequest struct {
	Reason string `json:"reason"`
}

// SendPaymentLinkRequest запрос на отправку ссылки на оплату
type SendPaymentLinkRequest struct {
	PaymentLink string `json:"paymentLink"`
}

// Response модели

// BookingResponse ответ с данными заявки
type BookingResponse struct {
	ID          int64  `json:"id"`
	StartDate   string `json:"startDate"` // "2026-02-10"
	EndDate     string `json:"endDate"`
	StartTime   string `json:"startTime"` // "09:00"
	EndTime     string `json:"endTime"`
	MileagePlan string `json:"mileagePlan"`
	TotalPrice  float64 `json:"totalPrice"`
	KmLimit     string  `json:"kmLimit"`
	Status      string  `json:"status"`

	CustomerFirstname string  `json:"customerFirstname"`
	CustomerLastname  string  `json:"customerLastname"`
	CustomerEmail     string  `json:"customerEmail"`
	CustomerPhone     string  `json:"customerPhone"`
	CustomerAddress   *string `json:"customerAddress,omitempty"`
	CustomerMessage   *string `json:"customerMessage,omitempty"`

	DocumentIDCard  string `json:"documentIdCard"`
	DocumentLicense string `json:"documentLicense"`
	DocumentProof   string `json:"documentProof"`

	DepositMethod   string  `json:"depositMethod"`
	RejectionReason *string `json:"rejectionReason,omitempty"`
	PaymentLink     *string `json:"paymentLink,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком заявок
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		StartDate:   b.StartDate.Format(domain.DateFormat),
		EndDate:     b.EndDate.Format(domain.DateFormat),
		StartTime:   b.StartTime.String(),
		EndTime:     b.EndTime.String(),
		MileagePlan: string(b.MileagePlan),
		TotalPrice:  b.TotalPrice,
		KmLimit:     b.KmLimit,
		Status:      string(b.Status),

		CustomerFirstname: b.CustomerFirstname,
		CustomerLastname:  b.CustomerLastname,
		CustomerEmail:     b.CustomerEmail,
		CustomerPhone:     b.CustomerPhone,
		CustomerAddress:   b.CustomerAddress,
		CustomerMessage:   b.CustomerMessage,

		DocumentIDCard:  b.DocumentIDCard,
		DocumentLicense: b.DocumentLicense,
		DocumentProof:   b.DocumentProof,

		DepositMethod:   b.DepositMethod,
		RejectionReason: b.RejectionReason,
		PaymentLink:     b.PaymentLink,

		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if resp := FromDomainBooking(b); resp != nil {
			result.Bookings = append(result.Bookings, *resp)
		}
	}

	return result
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending, domain.StatusAwaitingPayment, domain.StatusApproved,
		domain.StatusRejected, domain.StatusPaid:
		return domain.BookingStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
