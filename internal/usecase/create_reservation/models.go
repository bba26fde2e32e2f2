package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Customer        Customer
	PartySize       int              // Количество гостей
	Date            time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала, одно из сгенерированных для даты
	TableIDs        []string         // Назначенные столы в порядке выбора
	SpecialRequests *string          // Пожелания гостя (опционально)
}

// Customer данные гостя
type Customer struct {
	ID        string // Пустой ID будет сгенерирован
	Name      string
	Phone     string
	Email     *string
	Notes     *string
	VIPStatus bool
}

// Response модель ответа с созданным бронированием
type Response struct {
	Reservation *domain.Reservation
}
