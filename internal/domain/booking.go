package domain

import (
	"time"

	"github.com/perfectdrive/rental-service/pkg/types"
)

// BookingStatus represents the status of a rental booking request
type BookingStatus string

const (
	StatusPending         BookingStatus = "pending"
	StatusAwaitingPayment BookingStatus = "awaiting_payment"
	StatusApproved        BookingStatus = "approved"
	StatusRejected        BookingStatus = "rejected"
	StatusPaid            BookingStatus = "paid"
)

// MileagePlan represents the mileage option chosen by the customer
type MileagePlan string

const (
	PlanStandard  MileagePlan = "standard"
	PlanUnlimited MileagePlan = "unlimited"
)

// IsValid returns true if the plan is a known mileage plan
func (p MileagePlan) IsValid() bool {
	return p == PlanStandard || p == PlanUnlimited
}

// Booking represents a vehicle rental request in the system
type Booking struct {
	ID          int64
	StartDate   time.Time
	EndDate     time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	MileagePlan MileagePlan
	TotalPrice  float64
	KmLimit     string
	Status      BookingStatus

	CustomerFirstname string
	CustomerLastname  string
	CustomerEmail     string
	CustomerPhone     string
	CustomerAddress   *string
	CustomerMessage   *string

	// Paths in the external document store; upload itself is out of scope
	DocumentIDCard  string
	DocumentLicense string
	DocumentProof   string

	DepositMethod   string
	RejectionReason *string
	PaymentLink     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StartAt returns the full pickup date-time
func (b *Booking) StartAt() time.Time {
	return CombineDateTime(b.StartDate, b.StartTime)
}

// EndAt returns the full return date-time
func (b *Booking) EndAt() time.Time {
	return CombineDateTime(b.EndDate, b.EndTime)
}

// BlocksCalendar returns true if the booking occupies its date range.
// Rejected requests free their dates; every other status keeps them held.
func (b *Booking) BlocksCalendar() bool {
	return b.Status != StatusRejected
}

// CanBeApproved returns true if the booking can move to approved
func (b *Booking) CanBeApproved() bool {
	return b.Status == StatusPending || b.Status == StatusAwaitingPayment
}

// CanBeRejected returns true if the booking can move to rejected
func (b *Booking) CanBeRejected() bool {
	return b.Status == StatusPending || b.Status == StatusAwaitingPayment
}

// CanReceivePaymentLink returns true if a payment link may be sent
func (b *Booking) CanReceivePaymentLink() bool {
	return b.Status == StatusPending
}

// BookingsFilter фильтр для выборки бронирований (админская панель)
type BookingsFilter struct {
	Status          *BookingStatus // Фильтр по статусу (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	IncludeRejected bool           // Включать ли отклонённые заявки
}
