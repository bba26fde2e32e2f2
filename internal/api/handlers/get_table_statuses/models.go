package get_table_statuses

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationModels "github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	tableModels "github.com/m04kA/SMC-ReservationService/internal/service/tables/models"
	getTableStatuses "github.com/m04kA/SMC-ReservationService/internal/usecase/get_table_statuses"
)

// TableStatusesResponse HTTP response model
type TableStatusesResponse struct {
	Date   string        `json:"date"`
	Time   string        `json:"time"`
	Tables []TableStatus `json:"tables"`
}

// TableStatus стол и его состояние
type TableStatus struct {
	Table       tableModels.TableResponse              `json:"table"`
	Status      string                                 `json:"status"` // available | reserved | occupied
	Reservation *reservationModels.ReservationResponse `json:"reservation,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTableStatuses.Response) *TableStatusesResponse {
	tables := make([]TableStatus, 0, len(resp.Tables))
	for _, ts := range resp.Tables {
		tables = append(tables, TableStatus{
			Table:       tableModels.FromDomainTable(ts.Table),
			Status:      string(ts.Status),
			Reservation: reservationModels.FromDomainReservation(ts.Reservation),
		})
	}

	return &TableStatusesResponse{
		Date:   resp.Date.Format(domain.DateFormat),
		Time:   resp.Time.String(),
		Tables: tables,
	}
}
