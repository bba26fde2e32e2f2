package verify_password

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingPassword    = "пароль обязателен"
	msgNotConfigured      = "пароль администратора не настроен"
	msgInvalidPassword    = "неверный пароль"
	msgVerified           = "пароль подтвержден"
)

type Handler struct {
	verifier PasswordVerifier
	logger   Logger
}

func NewHandler(verifier PasswordVerifier, logger Logger) *Handler {
	return &Handler{
		verifier: verifier,
		logger:   logger,
	}
}

// Handle POST /api/v1/verify-password
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyPasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /verify-password - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Password == "" {
		h.logger.Warn("POST /verify-password - Missing password")
		handlers.RespondBadRequest(w, msgMissingPassword)
		return
	}

	if !h.verifier.Configured() {
		h.logger.Error("POST /verify-password - Admin password hash is not configured")
		handlers.RespondServiceUnavailable(w, msgNotConfigured)
		return
	}

	if !h.verifier.Verify(req.Password) {
		h.logger.Warn("POST /verify-password - Invalid password")
		handlers.RespondUnauthorized(w, msgInvalidPassword)
		return
	}

	h.logger.Info("POST /verify-password - Password verified")
	handlers.RespondJSON(w, http.StatusOK, VerifyPasswordResponse{Success: true, Message: msgVerified})
}
