package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// CurrentReservation находит неотмененное бронирование стола на дату,
// для которого StartTime <= instant < EndTime. nil, если такого нет.
func CurrentReservation(
	tableID string,
	date time.Time,
	instant types.TimeString,
	reservations []*domain.Reservation,
) (*domain.Reservation, error) {
	minute, err := instant.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: instant: %v", ErrInvalidInput, err)
	}

	for _, r := range reservations {
		if r == nil || r.IsCancelled() || !SameDay(r.Date, date) || !r.HasTable(tableID) {
			continue
		}
		interval, err := reservationInterval(r)
		if err != nil {
			return nil, err
		}
		if interval.Contains(minute) {
			return r, nil
		}
	}
	return nil, nil
}

// StatusOf состояние стола в момент instant:
// confirmed -> reserved, seated -> occupied, остальное и отсутствие бронирования -> available
func StatusOf(
	tableID string,
	date time.Time,
	instant types.TimeString,
	reservations []*domain.Reservation,
) (domain.TableStatus, error) {
	r, err := CurrentReservation(tableID, date, instant, reservations)
	if err != nil {
		return "", err
	}
	return StatusFor(r), nil
}

// StatusFor состояние стола по уже найденному текущему бронированию (nil -> available)
func StatusFor(r *domain.Reservation) domain.TableStatus {
	if r == nil {
		return domain.TableAvailable
	}

	switch r.Status {
	case domain.StatusConfirmed:
		return domain.TableReserved
	case domain.StatusSeated:
		return domain.TableOccupied
	default:
		return domain.TableAvailable
	}
}
