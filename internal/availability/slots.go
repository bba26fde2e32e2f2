package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// GenerateSlots возвращает допустимые времена начала бронирования на дату
// Шаг TimeSlotDuration, последний слот не позже CloseTime - ReservationDuration
// Для выходного дня и для слишком короткого дня результат пустой
func GenerateSlots(config *domain.RestaurantConfig, date time.Time) ([]types.TimeString, error) {
	hours, err := ResolveSchedule(config, date)
	if err != nil {
		return nil, err
	}
	if !hours.IsOpen {
		return []types.TimeString{}, nil
	}

	if config.TimeSlotDuration <= 0 || config.ReservationDuration <= 0 {
		return nil, fmt.Errorf("%w: slot duration %d and reservation duration %d must be positive",
			ErrInvalidInput, config.TimeSlotDuration, config.ReservationDuration)
	}

	openMinutes, err := hours.OpenTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: open time: %v", ErrInvalidInput, err)
	}
	closeMinutes, err := hours.CloseTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: close time: %v", ErrInvalidInput, err)
	}

	lastSlot := closeMinutes - config.ReservationDuration
	if lastSlot < openMinutes {
		return []types.TimeString{}, nil
	}

	slots := make([]types.TimeString, 0, (lastSlot-openMinutes)/config.TimeSlotDuration+1)
	for t := openMinutes; t <= lastSlot; t += config.TimeSlotDuration {
		slot, err := types.NewTimeStringFromMinutes(t)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// IsSlot returns true if start is one of the generated slots for the date
func IsSlot(config *domain.RestaurantConfig, date time.Time, start types.TimeString) (bool, error) {
	if err := start.Validate(); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	slots, err := GenerateSlots(config, date)
	if err != nil {
		return false, err
	}
	for _, slot := range slots {
		if slot == start {
			return true, nil
		}
	}
	return false, nil
}

// EndTime время окончания бронирования, начинающегося в start
func EndTime(config *domain.RestaurantConfig, start types.TimeString) (types.TimeString, error) {
	if config == nil || config.ReservationDuration <= 0 {
		return "", fmt.Errorf("%w: reservation duration must be positive", ErrInvalidInput)
	}
	end, err := start.AddMinutes(config.ReservationDuration)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return end, nil
}
