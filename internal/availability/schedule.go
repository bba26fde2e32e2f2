package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ResolveSchedule возвращает расписание на день недели даты (0=Sunday..6=Saturday)
func ResolveSchedule(config *domain.RestaurantConfig, date time.Time) (domain.WorkingHours, error) {
	if config == nil {
		return domain.WorkingHours{}, fmt.Errorf("%w: config is nil", ErrConfigurationIncomplete)
	}

	weekday := date.Weekday()
	hours, ok := config.WorkingHours[weekday]
	if !ok {
		return domain.WorkingHours{}, fmt.Errorf("%w: no working hours for %s", ErrConfigurationIncomplete, weekday)
	}
	return hours, nil
}

// IsDateAvailable проверяет, что на дату можно бронировать:
// ресторан открыт, дата не раньше today и укладывается в AdvanceBookingDays (0 = без ограничения)
func IsDateAvailable(config *domain.RestaurantConfig, date, today time.Time) (bool, error) {
	hours, err := ResolveSchedule(config, date)
	if err != nil {
		return false, err
	}
	if !hours.IsOpen {
		return false, nil
	}

	day := CivilDay(date)
	current := CivilDay(today)
	if day.Before(current) {
		return false, nil
	}

	if config.HasAdvanceBookingLimit() && day.After(current.AddDate(0, 0, config.AdvanceBookingDays)) {
		return false, nil
	}

	return true, nil
}

// CivilDay отбрасывает время и зону, оставляя календарный день в UTC
func CivilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay returns true if both values refer to the same calendar day
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
