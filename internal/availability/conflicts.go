package availability

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ValidateAssignment проверяет столы кандидата перед записью.
// Каждый стол должен существовать, быть активным и не пересекаться по времени
// с другим неотмененным бронированием на ту же дату (кроме excludeID).
// При нарушении возвращает *ConflictError с точным списком проблемных столов.
func ValidateAssignment(
	candidate *domain.Reservation,
	tables []*domain.Table,
	reservations []*domain.Reservation,
	excludeID string,
) error {
	// 1. Валидация самого кандидата
	if err := ValidateReservation(candidate); err != nil {
		return err
	}

	// Отмененное бронирование столы не удерживает
	if candidate.IsCancelled() {
		return nil
	}

	window, err := reservationInterval(candidate)
	if err != nil {
		return err
	}

	// 2. Индекс столов по ID
	byID := make(map[string]*domain.Table, len(tables))
	for _, table := range tables {
		if table != nil {
			byID[table.ID] = table
		}
	}

	// 3. Столы, занятые другими бронированиями в этом окне
	occupied, err := occupiedTables(candidate.Date, window, reservations, excludeID)
	if err != nil {
		return err
	}

	// 4. Собираем все нарушения в порядке столов кандидата
	var conflicting []string
	for _, id := range candidate.TableIDs {
		table, ok := byID[id]
		if !ok || !table.IsActive {
			conflicting = append(conflicting, id)
			continue
		}
		if _, busy := occupied[id]; busy {
			conflicting = append(conflicting, id)
		}
	}

	if len(conflicting) > 0 {
		return &ConflictError{TableIDs: conflicting}
	}
	return nil
}
