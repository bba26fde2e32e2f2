package get_available_tables

import (
	"strconv"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/tables/models"
	getAvailableTables "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_tables"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// AvailableTablesResponse HTTP response model
type AvailableTablesResponse struct {
	Date      string                 `json:"date"`
	StartTime string                 `json:"startTime"`
	EndTime   string                 `json:"endTime"`
	Tables    []models.TableResponse `json:"tables"`
}

// ToUseCaseRequest создает запрос use case из query параметров
// Вторым значением возвращается сообщение для ответа 400
func ToUseCaseRequest(dateStr, startTimeStr, partySizeStr string) (*getAvailableTables.Request, string, error) {
	date, err := handlers.ParseDate(dateStr)
	if err != nil {
		return nil, msgInvalidDate, err
	}

	startTime, err := types.NewTimeStringFromString(startTimeStr)
	if err != nil {
		return nil, msgInvalidTime, err
	}

	partySize, err := strconv.Atoi(partySizeStr)
	if err != nil {
		return nil, msgInvalidPartySize, err
	}

	return &getAvailableTables.Request{
		Date:      date,
		StartTime: startTime,
		PartySize: partySize,
	}, "", nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableTables.Response) *AvailableTablesResponse {
	return &AvailableTablesResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Tables:    models.FromDomainTables(resp.Tables),
	}
}
