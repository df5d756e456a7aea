package create_booking

import (
	"time"

	"github.com/perfectdrive/rental-service/internal/domain"
	"github.com/perfectdrive/rental-service/pkg/types"
)

// Request входные данные создания заявки на аренду
type Request struct {
	StartDate time.Time
	EndDate   time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Plan      domain.MileagePlan

	CustomerFirstname string
	CustomerLastname  string
	CustomerEmail     string
	CustomerPhone     string
	CustomerAddress   *string
	CustomerMessage   *string

	DocumentIDCard  string
	DocumentLicense string
	DocumentProof   string

	DepositMethod string
}

// Response созданная заявка
type Response struct {
	ID         int64
	StartDate  time.Time
	EndDate    time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Plan       string
	TotalPrice float64
	Days       int
	KmLimit    string
	Status     string
	CreatedAt  time.Time
}
