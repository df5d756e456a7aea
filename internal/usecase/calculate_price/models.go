package calculate_price

import (
	"time"

	"github.com/perfectdrive/rental-service/internal/domain"
)

// Request входные данные расчета стоимости аренды
type Request struct {
	Start time.Time
	End   time.Time
	Plan  domain.MileagePlan
}

// Response результат расчета стоимости
// Нарушения правил аренды не являются сбоем: они возвращаются в поле Err,
// чтобы вызывающий слой мог показать их пользователю.
type Response struct {
	TotalPrice float64
	Days       int
	KmLimit    string
	Err        error
}

// candidate один из вариантов разложения окна аренды на тарифы
type candidate struct {
	price float64
	km    int
}
