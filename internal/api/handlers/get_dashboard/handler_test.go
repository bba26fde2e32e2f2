package get_dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type stubService struct {
	err     error
	lastDay *time.Time
}

func (s *stubService) Dashboard(ctx context.Context, date time.Time) (*models.DashboardResponse, error) {
	s.lastDay = &date
	if s.err != nil {
		return nil, s.err
	}
	return &models.DashboardResponse{Date: date.Format(domain.DateFormat), TotalReservations: 3}, nil
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

func TestHandle_DefaultsToToday(t *testing.T) {
	now := time.Date(2025, 6, 5, 23, 30, 0, 0, time.UTC)
	svc := &stubService{}
	h := NewHandler(svc, fixedTime{now: now}, logger.Nop())

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastDay)
	assert.Equal(t, now, *svc.lastDay)

	var body models.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2025-06-05", body.Date)
	assert.Equal(t, 3, body.TotalReservations)
}

func TestHandle_ExplicitDate(t *testing.T) {
	svc := &stubService{}
	h := NewHandler(svc, fixedTime{now: time.Date(2025, 6, 5, 12, 0, 0, 0, time.UTC)}, logger.Nop())

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?date=2025-06-07", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastDay)
	assert.Equal(t, "2025-06-07", svc.lastDay.Format(domain.DateFormat))
}

func TestHandle_Errors(t *testing.T) {
	t.Run("invalid date", func(t *testing.T) {
		svc := &stubService{}
		h := NewHandler(svc, fixedTime{}, logger.Nop())

		w := httptest.NewRecorder()
		h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?date=07.06.2025", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, svc.lastDay)
	})

	t.Run("service failure", func(t *testing.T) {
		h := NewHandler(&stubService{err: errors.New("db down")}, fixedTime{}, logger.Nop())

		w := httptest.NewRecorder()
		h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRealTimeProvider_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := (&RealTimeProvider{Location: loc}).Now()
	assert.Equal(t, loc, now.Location())
}
