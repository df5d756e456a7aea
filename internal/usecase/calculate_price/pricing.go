package calculate_price

import (
	"fmt"
	"time"

	"github.com/perfectdrive/rental-service/internal/domain"
)

// quote рассчитывает стоимость аренды для окна [start, end]
//
// Порядок проверок повторяет порядок отображения ошибок на витрине:
// минимальная длительность, запрет суббот, минимум на выходных,
// затем подбор тарифа.
func quote(start, end time.Time, plan domain.MileagePlan) *Response {
	hours := end.Sub(start).Hours()
	if hours < domain.MinRentalHours {
		return rejection(ErrDurationTooShort)
	}

	days := domain.DaysBetween(start, end)

	// Окно внутри одних суток, но не короче 20 часов: считаем как один будний день
	if days <= 0 {
		return priced(domain.WeekdayRate(plan), 1, plan)
	}

	if domain.IsSaturday(start) {
		return rejection(ErrSaturdayDeparture)
	}
	if domain.IsSaturday(end) {
		return rejection(ErrSaturdayReturn)
	}

	touchesWeekend := false
	for i := 0; i <= days; i++ {
		if domain.IsWeekendDay(domain.AddDays(start, i)) {
			touchesWeekend = true
			break
		}
	}

	if !touchesWeekend {
		if days == domain.FiveWeekdayPackageDays {
			return pricedAs(domain.FiveWeekdayPackage(plan), days, plan)
		}

		rate := domain.WeekdayRate(plan)
		return priced(rate, days, plan)
	}

	if days < domain.MinWeekendDays {
		if domain.IsSunday(start) {
			return rejection(ErrSundayOnlyRental)
		}
		return rejection(ErrWeekendMinimum)
	}

	// Окно целиком совпадает с пакетом выходного дня.
	// Возврат в воскресенье оплачивается как 72-часовой пакет:
	// автомобиль фактически занят до понедельника.
	if domain.IsFriday(start) {
		if (domain.IsSunday(end) && days == 2) || (domain.IsMonday(end) && days == 3) {
			rate, _ := domain.WeekendPackage(3, plan)
			return pricedAs(rate, days, plan)
		}
	}

	return decompose(start, days, plan)
}

// decompose перебирает размещения пакетов выходного дня вокруг каждой пятницы
// окна и выбирает самый дешевый вариант
func decompose(start time.Time, days int, plan domain.MileagePlan) *Response {
	weekday := domain.WeekdayRate(plan)
	we48, _ := domain.WeekendPackage(2, plan)
	we72, _ := domain.WeekendPackage(3, plan)
	fallback := domain.MixedFallbackRate(plan)

	var candidates []candidate

	for i := 0; i <= days; i++ {
		if !domain.IsFriday(domain.AddDays(start, i)) {
			continue
		}

		// 48-часовой пакет, начиная с этой пятницы
		if after := days - i - 2; after >= 0 {
			if after == 0 {
				// Пакет заканчивается в воскресенье вместе с окном:
				// оплачивается 72-часовой пакет, один будний день поглощается
				wu := days - 3
				if wu < 0 {
					wu = 0
				}
				candidates = append(candidates, candidate{
					price: float64(wu)*weekday.Price + we72.Price,
					km:    wu*weekday.Km + we72.Km,
				})
			} else {
				wu := i + after
				candidates = append(candidates, candidate{
					price: float64(wu)*weekday.Price + we48.Price,
					km:    wu*weekday.Km + we48.Km,
				})
			}
		}

		// 72-часовой пакет, начиная с этой пятницы
		if after := days - i - 3; after >= 0 {
			wu := days - 3
			candidates = append(candidates, candidate{
				price: float64(wu)*weekday.Price + we72.Price,
				km:    wu*weekday.Km + we72.Km,
			})
		}
	}

	// Смешанный тариф применим всегда
	candidates = append(candidates, candidate{
		price: float64(days) * fallback.Price,
		km:    days * fallback.Km,
	})

	if len(candidates) == 0 {
		return rejection(ErrNoValidDecomposition)
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.price < best.price {
			best = c
		}
	}

	return &Response{
		TotalPrice: best.price,
		Days:       days,
		KmLimit:    kmLabel(best.km, plan),
	}
}

func rejection(err error) *Response {
	return &Response{Err: err}
}

// priced возвращает ответ для days единиц посуточного тарифа
func priced(rate domain.Rate, days int, plan domain.MileagePlan) *Response {
	return &Response{
		TotalPrice: rate.Price * float64(days),
		Days:       days,
		KmLimit:    kmLabel(rate.Km*days, plan),
	}
}

// pricedAs возвращает ответ для фиксированного пакета на days дней
func pricedAs(rate domain.Rate, days int, plan domain.MileagePlan) *Response {
	return &Response{
		TotalPrice: rate.Price,
		Days:       days,
		KmLimit:    kmLabel(rate.Km, plan),
	}
}

func kmLabel(km int, plan domain.MileagePlan) string {
	if plan == domain.PlanUnlimited {
		return domain.KmUnlimitedLabel
	}
	return fmt.Sprintf("%d km", km)
}
