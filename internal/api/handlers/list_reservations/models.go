package list_reservations

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

// ReservationListResponse HTTP response model
type ReservationListResponse struct {
	Reservations []models.ReservationResponse `json:"reservations"`
	Total        int                          `json:"total"`
}

// ToServiceRequest создает запрос сервиса из query параметров
// Вторым значением возвращается сообщение для ответа 400
func ToServiceRequest(query url.Values) (*models.ListReservationsRequest, string, error) {
	date, err := handlers.ParseOptionalDate(query.Get("date"))
	if err != nil {
		return nil, msgInvalidDate, err
	}

	req := &models.ListReservationsRequest{
		Date:  date,
		Query: strings.TrimSpace(query.Get("q")),
	}

	if status := query.Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}

	if v := query.Get("includeCancelled"); v != "" {
		includeCancelled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, msgInvalidParams, err
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, "", nil
}
