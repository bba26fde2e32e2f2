package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ValidateTable проверяет вместимость и зону стола
func ValidateTable(table *domain.Table) error {
	if table == nil {
		return fmt.Errorf("%w: table is nil", ErrInvalidInput)
	}
	if table.ID == "" {
		return fmt.Errorf("%w: table id is required", ErrInvalidInput)
	}
	if table.Capacity.Min < 1 {
		return fmt.Errorf("%w: table %s: min capacity must be at least 1", ErrInvalidInput, table.ID)
	}
	if table.Capacity.Min > table.Capacity.Max {
		return fmt.Errorf("%w: table %s: min capacity %d exceeds max %d",
			ErrInvalidInput, table.ID, table.Capacity.Min, table.Capacity.Max)
	}
	if !table.Area.IsValid() {
		return fmt.Errorf("%w: table %s: unknown area %q", ErrInvalidInput, table.ID, table.Area)
	}
	return nil
}

// ValidateReservation проверяет размер компании, окно и набор столов
func ValidateReservation(r *domain.Reservation) error {
	if r == nil {
		return fmt.Errorf("%w: reservation is nil", ErrInvalidInput)
	}
	if r.PartySize <= 0 {
		return fmt.Errorf("%w: party size must be positive, got %d", ErrInvalidInput, r.PartySize)
	}
	if r.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := NewInterval(r.StartTime, r.EndTime); err != nil {
		return err
	}
	if len(r.TableIDs) == 0 {
		return fmt.Errorf("%w: at least one table is required", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(r.TableIDs))
	for _, id := range r.TableIDs {
		if id == "" {
			return fmt.Errorf("%w: empty table id", ErrInvalidInput)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: table %s assigned twice", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	if r.Status != "" && !r.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, r.Status)
	}
	return nil
}

// ValidateConfig проверяет, что конфигурация полная и согласованная
// Отсутствие хотя бы одного дня недели возвращает ErrConfigurationIncomplete
func ValidateConfig(config *domain.RestaurantConfig) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrConfigurationIncomplete)
	}

	for day := time.Sunday; day <= time.Saturday; day++ {
		hours, ok := config.WorkingHours[day]
		if !ok {
			return fmt.Errorf("%w: no working hours for %s", ErrConfigurationIncomplete, day)
		}
		if !hours.IsOpen {
			continue
		}
		if _, err := NewInterval(hours.OpenTime, hours.CloseTime); err != nil {
			return fmt.Errorf("%s: %w", day, err)
		}
	}

	if config.TimeSlotDuration < domain.MinTimeSlotDuration || config.TimeSlotDuration > domain.MaxTimeSlotDuration {
		return fmt.Errorf("%w: time slot duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinTimeSlotDuration, domain.MaxTimeSlotDuration)
	}
	if config.ReservationDuration < domain.MinReservationDuration || config.ReservationDuration > domain.MaxReservationDuration {
		return fmt.Errorf("%w: reservation duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinReservationDuration, domain.MaxReservationDuration)
	}
	if config.AdvanceBookingDays < domain.MinAdvanceBookingDays || config.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advance booking days must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	return nil
}
