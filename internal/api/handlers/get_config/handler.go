package get_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/config"
)

const (
	msgNotFound = "конфигурация ресторана не найдена"
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

// Handle GET /api/v1/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.Get(r.Context())
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			h.logger.Warn("GET /config - Config not found")
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("GET /config - Failed to get config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /config - Config retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, cfg)
}
