package get_available_tables

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса свободных столов
type Request struct {
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала, например "19:00"
	PartySize int              // Количество гостей
}

// Response модель ответа со свободными столами
type Response struct {
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString // StartTime + длительность бронирования
	Tables    []*domain.Table  // В порядке схемы зала
}
