package get_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type stubService struct {
	calls int
	resp  *models.ReservationResponse
	err   error
}

func (s *stubService) GetByID(ctx context.Context, id string) (*models.ReservationResponse, error) {
	s.calls++
	return s.resp, s.err
}

func get(svc ReservationService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/reservations/{id}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandle(t *testing.T) {
	const id = "6f1c2a5e-3b7d-4c8e-9a0f-1d2e3f4a5b6c"

	tests := []struct {
		name      string
		path      string
		svc       *stubService
		code      int
		wantCalls int
	}{
		{"found", "/api/v1/reservations/" + id, &stubService{resp: &models.ReservationResponse{ID: id}}, http.StatusOK, 1},
		{"unknown id", "/api/v1/reservations/" + id, &stubService{err: reservations.ErrReservationNotFound}, http.StatusNotFound, 1},
		{"malformed id", "/api/v1/reservations/abc", &stubService{}, http.StatusBadRequest, 0},
		{"storage failure", "/api/v1/reservations/" + id, &stubService{err: reservations.ErrInternal}, http.StatusInternalServerError, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(tt.svc, tt.path)
			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.wantCalls, tt.svc.calls)
		})
	}
}
