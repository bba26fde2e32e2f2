package get_available_tables

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	getAvailableTables "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_tables"
)

const (
	msgMissingParams      = "параметры date, startTime и partySize обязательны"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidPartySize   = "некорректное количество гостей"
	msgInvalidData        = "некорректные параметры запроса"
	msgRestaurantNotReady = "ресторан еще не настроен"
)

type Handler struct {
	useCase GetAvailableTablesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTablesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tables/available
// Query params: date (YYYY-MM-DD), startTime (HH:MM), partySize
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	dateStr := query.Get("date")
	startTimeStr := query.Get("startTime")
	partySizeStr := query.Get("partySize")

	if dateStr == "" || startTimeStr == "" || partySizeStr == "" {
		h.logger.Warn("GET /tables/available - Missing params: date=%q, startTime=%q, partySize=%q",
			dateStr, startTimeStr, partySizeStr)
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	useCaseReq, msg, err := ToUseCaseRequest(dateStr, startTimeStr, partySizeStr)
	if err != nil {
		h.logger.Warn("GET /tables/available - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msg)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTables.ErrInvalidInput):
			h.logger.Warn("GET /tables/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, getAvailableTables.ErrRestaurantNotConfigured):
			h.logger.Error("GET /tables/available - Restaurant is not configured: %v", err)
			handlers.RespondServiceUnavailable(w, msgRestaurantNotReady)

		default:
			h.logger.Error("GET /tables/available - Failed to get tables: date=%s, time=%s, error=%v",
				dateStr, startTimeStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tables/available - Tables retrieved successfully: date=%s, time=%s, party=%d, tables_count=%d",
		dateStr, startTimeStr, useCaseReq.PartySize, len(result.Tables))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
