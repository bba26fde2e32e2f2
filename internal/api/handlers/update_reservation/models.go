package update_reservation

import (
	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	updateReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// UpdateReservationRequest HTTP request model
// Все поля заменяются целиком, статус меняется отдельным запросом
type UpdateReservationRequest struct {
	Customer        CustomerRequest `json:"customer"`
	PartySize       int             `json:"partySize"`
	Date            string          `json:"date"`
	StartTime       string          `json:"startTime"`
	TableIDs        []string        `json:"tableIds"`
	SpecialRequests *string         `json:"specialRequests,omitempty"`
}

// CustomerRequest данные гостя (ID гостя не меняется)
type CustomerRequest struct {
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	VIPStatus bool    `json:"vipStatus"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Вторым значением возвращается сообщение для ответа 400
func (r *UpdateReservationRequest) ToUseCaseRequest(id string) (*updateReservation.Request, string, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, msgInvalidDate, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, msgInvalidTime, err
	}

	return &updateReservation.Request{
		ID: id,
		Customer: updateReservation.Customer{
			Name:      r.Customer.Name,
			Phone:     r.Customer.Phone,
			Email:     r.Customer.Email,
			Notes:     r.Customer.Notes,
			VIPStatus: r.Customer.VIPStatus,
		},
		PartySize:       r.PartySize,
		Date:            date,
		StartTime:       startTime,
		TableIDs:        r.TableIDs,
		SpecialRequests: r.SpecialRequests,
	}, "", nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *models.ReservationResponse {
	return models.FromDomainReservation(resp.Reservation)
}
