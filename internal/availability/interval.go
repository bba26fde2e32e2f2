package availability

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Interval полуоткрытый интервал [Start, End) в минутах от полуночи
type Interval struct {
	Start int
	End   int
}

// NewInterval строит интервал из строк HH:MM, требуя start < end
func NewInterval(start, end types.TimeString) (Interval, error) {
	s, err := start.Minutes()
	if err != nil {
		return Interval{}, fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	e, err := end.Minutes()
	if err != nil {
		return Interval{}, fmt.Errorf("%w: end time: %v", ErrInvalidInput, err)
	}
	if s >= e {
		return Interval{}, fmt.Errorf("%w: start time %s must be before end time %s", ErrInvalidInput, start, end)
	}
	return Interval{Start: s, End: e}, nil
}

// Overlaps проверяет пересечение полуоткрытых интервалов
// Соприкасающиеся интервалы ([10:00,11:00) и [11:00,12:00)) не пересекаются
func (i Interval) Overlaps(other Interval) bool {
	return !(i.End <= other.Start || i.Start >= other.End)
}

// Contains returns true if Start <= minute < End
func (i Interval) Contains(minute int) bool {
	return i.Start <= minute && minute < i.End
}

// Overlaps проверяет пересечение [aStart, aEnd) и [bStart, bEnd)
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) (bool, error) {
	a, err := NewInterval(aStart, aEnd)
	if err != nil {
		return false, err
	}
	b, err := NewInterval(bStart, bEnd)
	if err != nil {
		return false, err
	}
	return a.Overlaps(b), nil
}

// reservationInterval интервал, который бронирование удерживает за своими столами
func reservationInterval(r *domain.Reservation) (Interval, error) {
	interval, err := NewInterval(r.StartTime, r.EndTime)
	if err != nil {
		return Interval{}, fmt.Errorf("reservation %s: %w", r.ID, err)
	}
	return interval, nil
}
