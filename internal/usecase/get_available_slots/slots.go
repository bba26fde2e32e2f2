package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// dropPastSlots убирает уже наступившие слоты, если дата - сегодня
// Слот, начинающийся в текущую минуту, остается доступным
func dropPastSlots(slots []types.TimeString, date, now time.Time) []types.TimeString {
	if !availability.SameDay(date, now) {
		return slots
	}

	currentTime := types.NewTimeString(now)
	result := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if !slot.IsBefore(currentTime) {
			result = append(result, slot)
		}
	}
	return result
}
