package purge_tables

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

type Handler struct {
	service TableService
	logger  Logger
}

func NewHandler(service TableService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/tables/inactive
// Удаляет неактивные столы, на которые не ссылается ни одно бронирование
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.PurgeInactive(r.Context())
	if err != nil {
		h.logger.Error("DELETE /tables/inactive - Failed to purge tables: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /tables/inactive - Inactive tables purged: deleted=%d", result.Deleted)
	handlers.RespondJSON(w, http.StatusOK, result)
}
