package replace_tables

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/tables"
	"github.com/m04kA/SMC-ReservationService/internal/service/tables/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректная схема зала"
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

// Handle PUT /api/v1/tables
// Столы, которых нет в запросе, деактивируются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ReplaceLayoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tables - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ReplaceLayout(r.Context(), &req)
	if err != nil {
		if errors.Is(err, tables.ErrInvalidInput) {
			h.logger.Warn("PUT /tables - Invalid layout: %v", err)
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidData+": "+err.Error())
			return
		}

		h.logger.Error("PUT /tables - Failed to replace layout: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /tables - Layout replaced successfully: tables=%d, deactivated=%d",
		len(result.Tables), result.Deactivated)
	handlers.RespondJSON(w, http.StatusOK, result)
}
