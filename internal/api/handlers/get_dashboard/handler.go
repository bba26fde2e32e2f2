package get_dashboard

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service      ReservationService
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(service ReservationService, timeProvider TimeProvider, logger Logger) *Handler {
	return &Handler{
		service:      service,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Handle GET /api/v1/dashboard
// Query params: date (опционально, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.ParseOptionalDate(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /dashboard - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	day := h.timeProvider.Now()
	if date != nil {
		day = *date
	}

	result, err := h.service.Dashboard(r.Context(), day)
	if err != nil {
		h.logger.Error("GET /dashboard - Failed to build dashboard: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /dashboard - Dashboard retrieved successfully: date=%s, total=%d",
		result.Date, result.TotalReservations)
	handlers.RespondJSON(w, http.StatusOK, result)
}
