package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Query окно и размер компании, для которых ищутся свободные столы
type Query struct {
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	PartySize int
	Today     time.Time // текущий календарный день ресторана
}

// AvailableTables возвращает активные столы, подходящие по вместимости
// и не занятые пересекающимися неотмененными бронированиями на дату.
// Порядок столов сохраняется. Пустой результат не является ошибкой.
func AvailableTables(
	config *domain.RestaurantConfig,
	query Query,
	tables []*domain.Table,
	reservations []*domain.Reservation,
) ([]*domain.Table, error) {
	// 1. Валидация запроса
	if query.PartySize <= 0 {
		return nil, fmt.Errorf("%w: party size must be positive, got %d", ErrInvalidInput, query.PartySize)
	}
	window, err := NewInterval(query.StartTime, query.EndTime)
	if err != nil {
		return nil, err
	}
	for _, table := range tables {
		if err := ValidateTable(table); err != nil {
			return nil, err
		}
	}

	// 2. Дата должна быть доступна для бронирования
	bookable, err := IsDateAvailable(config, query.Date, query.Today)
	if err != nil {
		return nil, err
	}
	if !bookable {
		return []*domain.Table{}, nil
	}

	// 3. Собираем столы, занятые пересекающимися бронированиями
	excluded, err := occupiedTables(query.Date, window, reservations, "")
	if err != nil {
		return nil, err
	}

	// 4. Фильтруем по активности, занятости и вместимости
	result := make([]*domain.Table, 0, len(tables))
	for _, table := range tables {
		if !table.IsActive {
			continue
		}
		if _, busy := excluded[table.ID]; busy {
			continue
		}
		if !table.Capacity.Fits(query.PartySize) {
			continue
		}
		result = append(result, table)
	}

	return result, nil
}

// occupiedTables возвращает столы неотмененных бронирований на дату, пересекающихся с window
// Бронирование с ID == excludeID не учитывается
func occupiedTables(
	date time.Time,
	window Interval,
	reservations []*domain.Reservation,
	excludeID string,
) (map[string]struct{}, error) {
	occupied := make(map[string]struct{})
	for _, r := range reservations {
		if r == nil || r.IsCancelled() || !SameDay(r.Date, date) {
			continue
		}
		if excludeID != "" && r.ID == excludeID {
			continue
		}

		interval, err := reservationInterval(r)
		if err != nil {
			return nil, err
		}
		if !interval.Overlaps(window) {
			continue
		}

		for _, id := range r.TableIDs {
			occupied[id] = struct{}{}
		}
	}
	return occupied, nil
}
