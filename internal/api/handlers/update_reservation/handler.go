package update_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/availability"
	updateReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/update_reservation"
)

const (
	msgInvalidID          = "некорректный идентификатор бронирования, ожидается UUID"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidData        = "некорректные данные бронирования"
	msgNotFound           = "бронирование не найдено"
	msgReservationClosed  = "бронирование завершено или отменено и не может быть изменено"
	msgDateNotAvailable   = "ресторан не принимает бронирования на выбранную дату"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgTooLateToBook      = "слишком поздно для бронирования этого слота"
	msgTablesNotAvailable = "выбранные столы недоступны"
	msgConcurrentUpdate   = "бронирование изменено параллельно, повторите попытку"
	msgRestaurantNotReady = "ресторан еще не настроен"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.ParseReservationID(r)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, msg, err := req.ToUseCaseRequest(id)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Failed to parse request: reservation_id=%s, error=%v", id, err)
		handlers.RespondBadRequest(w, msg)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Reservation not found: reservation_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateReservation.ErrReservationClosed):
			h.logger.Warn("PUT /reservations/{id} - Reservation closed: reservation_id=%s", id)
			handlers.RespondError(w, http.StatusConflict, msgReservationClosed)

		case errors.Is(err, updateReservation.ErrTablesNotAvailable):
			tables, _ := availability.ConflictingTables(err)
			h.logger.Warn("PUT /reservations/{id} - Tables not available: reservation_id=%s, tables=%v", id, tables)
			handlers.RespondConflict(w, msgTablesNotAvailable, tables)

		case errors.Is(err, updateReservation.ErrConcurrentUpdate):
			h.logger.Warn("PUT /reservations/{id} - Concurrent update: reservation_id=%s", id)
			handlers.RespondError(w, http.StatusConflict, msgConcurrentUpdate)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id} - Invalid data: reservation_id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, updateReservation.ErrDateNotAvailable):
			h.logger.Warn("PUT /reservations/{id} - Date not available: reservation_id=%s, date=%s", id, req.Date)
			handlers.RespondUnprocessable(w, msgDateNotAvailable)

		case errors.Is(err, updateReservation.ErrInvalidTimeSlot):
			h.logger.Warn("PUT /reservations/{id} - Invalid time slot: reservation_id=%s, time=%s", id, req.StartTime)
			handlers.RespondUnprocessable(w, msgInvalidTimeSlot)

		case errors.Is(err, updateReservation.ErrTooLateToBook):
			h.logger.Warn("PUT /reservations/{id} - Too late to book: reservation_id=%s, time=%s", id, req.StartTime)
			handlers.RespondUnprocessable(w, msgTooLateToBook)

		case errors.Is(err, updateReservation.ErrRestaurantNotConfigured):
			h.logger.Error("PUT /reservations/{id} - Restaurant is not configured: %v", err)
			handlers.RespondServiceUnavailable(w, msgRestaurantNotReady)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to update reservation: reservation_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /reservations/{id} - Reservation updated successfully: reservation_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, response)
}
