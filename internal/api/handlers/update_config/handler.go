package update_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/config"
	"github.com/m04kA/SMC-ReservationService/internal/service/config/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные конфигурации"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/config
// Конфигурация заменяется целиком, расписание должно содержать все 7 дней
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ReplaceConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Replace(r.Context(), &req)
	if err != nil {
		if errors.Is(err, config.ErrInvalidInput) {
			h.logger.Warn("PUT /config - Invalid data: %v", err)
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidData+": "+err.Error())
			return
		}

		h.logger.Error("PUT /config - Failed to update config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /config - Config updated successfully: slot=%d, duration=%d",
		result.TimeSlotDuration, result.ReservationDuration)
	handlers.RespondJSON(w, http.StatusOK, result)
}
