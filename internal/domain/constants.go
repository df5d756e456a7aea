package domain

// Business rule constants
const (
	// MinRentalHours minimum rental duration in hours
	MinRentalHours = 20

	// MinWeekendDays minimum duration in days for a window touching a weekend
	MinWeekendDays = 2

	// FiveWeekdayPackageDays duration matched by the 5-weekday package
	FiveWeekdayPackageDays = 5

	// TurnoverGapMinutes mandatory buffer between a return and the next
	// departure on the same calendar day
	TurnoverGapMinutes = 60
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// KmUnlimitedLabel user-facing label for the unlimited mileage allowance
// (the storefront is French)
const KmUnlimitedLabel = "Illimité"

// TerminalStatuses статусы, в которых заявка не блокирует календарь
var TerminalStatuses = []BookingStatus{
	StatusRejected,
}

// ActiveStatuses статусы, в которых заявка удерживает свои даты
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusAwaitingPayment,
	StatusApproved,
	StatusPaid,
}
