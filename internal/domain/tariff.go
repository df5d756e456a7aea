package domain

import "fmt"

// Rate is a price with its mileage allowance
type Rate struct {
	Price       float64
	Km          int
	KmUnlimited bool
}

// KmLabel returns the user-facing mileage allowance label
func (r Rate) KmLabel() string {
	if r.KmUnlimited {
		return KmUnlimitedLabel
	}

	return fmt.Sprintf("%d km", r.Km)
}

// Tariff table, prices in euros. Two mileage plans are offered:
// a standard plan with a per-unit km allowance and an unlimited plan.
var (
	weekdayRates = map[MileagePlan]Rate{
		PlanStandard:  {Price: 60, Km: 150},
		PlanUnlimited: {Price: 90, KmUnlimited: true},
	}

	weekend48Rates = map[MileagePlan]Rate{
		PlanStandard:  {Price: 150, Km: 350},
		PlanUnlimited: {Price: 200, KmUnlimited: true},
	}

	weekend72Rates = map[MileagePlan]Rate{
		PlanStandard:  {Price: 200, Km: 400},
		PlanUnlimited: {Price: 280, KmUnlimited: true},
	}

	fiveWeekdayRates = map[MileagePlan]Rate{
		PlanStandard:  {Price: 250, Km: 700},
		PlanUnlimited: {Price: 350, KmUnlimited: true},
	}

	mixedFallbackRates = map[MileagePlan]Rate{
		PlanStandard:  {Price: 70, Km: 150},
		PlanUnlimited: {Price: 95, KmUnlimited: true},
	}
)

// WeekdayRate returns the per-day rate for a weekday rental
func WeekdayRate(plan MileagePlan) Rate {
	return weekdayRates[plan]
}

// WeekendPackage returns the fixed weekend package for the given duration.
// Known durations are 2 days (48h) and 3 days (72h); ok is false otherwise.
func WeekendPackage(durationDays int, plan MileagePlan) (Rate, bool) {
	switch durationDays {
	case 2:
		return weekend48Rates[plan], true
	case 3:
		return weekend72Rates[plan], true
	default:
		return Rate{}, false
	}
}

// FiveWeekdayPackage returns the discounted Monday-to-Friday package
func FiveWeekdayPackage(plan MileagePlan) Rate {
	return fiveWeekdayRates[plan]
}

// MixedFallbackRate returns the per-day rate used when a window spanning
// a weekend cannot be decomposed into weekend packages
func MixedFallbackRate(plan MileagePlan) Rate {
	return mixedFallbackRates[plan]
}
