package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на изменение бронирования
// Данные гостя, состав, время и столы заменяются целиком, статус не меняется
type Request struct {
	ID              string
	Customer        Customer
	PartySize       int
	Date            time.Time
	StartTime       types.TimeString
	TableIDs        []string
	SpecialRequests *string
}

// Customer данные гостя
type Customer struct {
	Name      string
	Phone     string
	Email     *string
	Notes     *string
	VIPStatus bool
}

// Response модель ответа с измененным бронированием
type Response struct {
	Reservation *domain.Reservation
}
