package create_reservation

import (
	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Customer        CustomerRequest `json:"customer"`
	PartySize       int             `json:"partySize"`
	Date            string          `json:"date"`      // "2025-10-15"
	StartTime       string          `json:"startTime"` // "19:00"
	TableIDs        []string        `json:"tableIds"`
	SpecialRequests *string         `json:"specialRequests,omitempty"`
}

// CustomerRequest данные гостя
type CustomerRequest struct {
	ID        string  `json:"id,omitempty"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	VIPStatus bool    `json:"vipStatus"`
}

// parseError ошибка разбора полей запроса с понятным пользователю сообщением
type parseError struct {
	message string
	err     error
}

func (e *parseError) Error() string {
	return e.err.Error()
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, &parseError{message: msgInvalidDate, err: err}
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, &parseError{message: msgInvalidTime, err: err}
	}

	return &createReservation.Request{
		Customer: createReservation.Customer{
			ID:        r.Customer.ID,
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
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *models.ReservationResponse {
	return models.FromDomainReservation(resp.Reservation)
}
