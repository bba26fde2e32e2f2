package get_tables

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/tables"
	"github.com/m04kA/SMC-ReservationService/internal/service/tables/models"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
	msgInvalidArea   = "некорректная зона, допустимы bar, inside, outside"
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

// Handle GET /api/v1/tables
// Query params: area, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListTablesRequest{}

	if area := query.Get("area"); area != "" {
		req.Area = ptr.Ptr(area)
	}
	if v := query.Get("includeInactive"); v != "" {
		includeInactive, err := strconv.ParseBool(v)
		if err != nil {
			h.logger.Warn("GET /tables - Invalid includeInactive: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		req.IncludeInactive = includeInactive
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, tables.ErrInvalidInput) {
			h.logger.Warn("GET /tables - Invalid area: %v", err)
			handlers.RespondBadRequest(w, msgInvalidArea)
			return
		}

		h.logger.Error("GET /tables - Failed to list tables: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tables - Tables retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
