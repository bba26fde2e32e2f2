package get_table_statuses

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса состояния столов
// Пустые Date и Time означают текущий момент в часовом поясе ресторана
type Request struct {
	Date *time.Time
	Time *types.TimeString
}

// TableStatus состояние одного стола
type TableStatus struct {
	Table       *domain.Table
	Status      domain.TableStatus
	Reservation *domain.Reservation // Бронирование, занимающее стол в этот момент (если есть)
}

// Response модель ответа со схемой зала на момент времени
type Response struct {
	Date   time.Time
	Time   types.TimeString
	Tables []TableStatus // В порядке схемы зала
}
