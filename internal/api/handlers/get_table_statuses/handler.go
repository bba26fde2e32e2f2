package get_table_statuses

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	getTableStatuses "github.com/m04kA/SMC-ReservationService/internal/usecase/get_table_statuses"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime = "некорректный формат времени, ожидается HH:MM"
)

type Handler struct {
	useCase GetTableStatusesUseCase
	logger  Logger
}

func NewHandler(useCase GetTableStatusesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tables/status
// Query params: date (YYYY-MM-DD), time (HH:MM), оба необязательны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := handlers.ParseOptionalDate(query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /tables/status - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getTableStatuses.Request{Date: date}
	if timeStr := query.Get("time"); timeStr != "" {
		instant, err := types.NewTimeStringFromString(timeStr)
		if err != nil {
			h.logger.Warn("GET /tables/status - Invalid time format: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		req.Time = &instant
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, getTableStatuses.ErrInvalidInput) {
			h.logger.Warn("GET /tables/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		h.logger.Error("GET /tables/status - Failed to get table statuses: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tables/status - Statuses retrieved successfully: tables_count=%d", len(result.Tables))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
