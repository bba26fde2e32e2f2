package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date     time.Time          // Дата, на которую запрашивались слоты
	Bookable bool               // false - ресторан закрыт, дата в прошлом или за пределами окна бронирования
	Slots    []types.TimeString // Допустимые времена начала по возрастанию
}
