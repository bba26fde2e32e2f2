package update_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	if name := strings.TrimSpace(req.Customer.Name); name == "" || len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: customer name must be 1..%d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if strings.TrimSpace(req.Customer.Phone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	if req.PartySize <= 0 || req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize must be between 1 and %d", ErrInvalidInput, domain.MaxPartySize)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	if len(req.TableIDs) == 0 || len(req.TableIDs) > domain.MaxTablesPerReservation {
		return fmt.Errorf("%w: tableIds must contain 1..%d tables", ErrInvalidInput, domain.MaxTablesPerReservation)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: specialRequests is longer than %d characters", ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	return nil
}

// validateSchedule проверяет новую дату и время начала так же, как при создании
// Возвращает время окончания
func validateSchedule(config *domain.RestaurantConfig, date time.Time, start types.TimeString, now time.Time) (types.TimeString, error) {
	bookable, err := availability.IsDateAvailable(config, date, now)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRestaurantNotConfigured, err)
	}
	if !bookable {
		return "", fmt.Errorf("%w: %s", ErrDateNotAvailable, date.Format(domain.DateFormat))
	}

	isSlot, err := availability.IsSlot(config, date, start)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	if !isSlot {
		return "", fmt.Errorf("%w: %s is not a slot on %s", ErrInvalidTimeSlot, start, date.Format(domain.DateFormat))
	}

	if availability.SameDay(date, now) && start.IsBefore(types.NewTimeString(now)) {
		return "", fmt.Errorf("%w: %s already started", ErrTooLateToBook, start)
	}

	endTime, err := availability.EndTime(config, start)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	return endTime, nil
}
