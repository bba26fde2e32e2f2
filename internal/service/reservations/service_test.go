package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*domain.Reservation)
	return r, args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*domain.Reservation)
	return list, args.Error(1)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingMetrics struct {
	writes []string
}

func (m *recordingMetrics) IncReservationWrite(operation, result string) {
	m.writes = append(m.writes, operation+":"+result)
}

var testDay = time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

func reservationAt(id, start string, party int, status domain.ReservationStatus) *domain.Reservation {
	startTime := types.TimeString(start)
	end, _ := startTime.AddMinutes(120)
	return &domain.Reservation{
		ID:        id,
		Customer:  domain.Customer{ID: "c-" + id, Name: "Guest " + id, Phone: "+100000" + id},
		PartySize: party,
		Date:      testDay,
		StartTime: startTime,
		EndTime:   end,
		TableIDs:  []string{"in-1"},
		Status:    status,
	}
}

func newService(repo *mockRepo) (*Service, *recordingMetrics) {
	m := &recordingMetrics{}
	return NewService(repo, inlineTx{}, m, logger.Nop()), m
}

func TestService_GetByID(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, "r1").Return(reservationAt("r1", "19:00", 4, domain.StatusConfirmed), nil)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, reservationRepo.ErrReservationNotFound)
	svc, _ := newService(repo)

	resp, err := svc.GetByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-05", resp.Date)
	assert.Equal(t, "19:00", resp.StartTime)
	assert.Equal(t, "21:00", resp.EndTime)
	assert.Equal(t, []string{"in-1"}, resp.TableIDs)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_List_PassesFilter(t *testing.T) {
	repo := &mockRepo{}
	seated := domain.StatusSeated
	repo.On("List", mock.Anything, domain.ReservationsFilter{
		Date:   &testDay,
		Status: &seated,
		Query:  "smith",
	}).Return([]*domain.Reservation{reservationAt("r1", "18:00", 2, domain.StatusSeated)}, nil)
	svc, _ := newService(repo)

	resp, err := svc.List(context.Background(), &models.ListReservationsRequest{
		Date:   &testDay,
		Status: ptr.Ptr("seated"),
		Query:  "  smith ",
	})
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "seated", resp[0].Status)
}

func TestService_List_UnknownStatus(t *testing.T) {
	repo := &mockRepo{}
	svc, _ := newService(repo)

	_, err := svc.List(context.Background(), &models.ListReservationsRequest{Status: ptr.Ptr("maintenance")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.ReservationStatus
		to      string
		wantErr error
	}{
		{name: "confirmed to seated", from: domain.StatusConfirmed, to: "seated"},
		{name: "confirmed to no-show", from: domain.StatusConfirmed, to: "no-show"},
		{name: "seated to completed", from: domain.StatusSeated, to: "completed"},
		{name: "seated to cancelled", from: domain.StatusSeated, to: "cancelled"},
		{name: "confirmed to completed", from: domain.StatusConfirmed, to: "completed", wantErr: ErrInvalidStatusTransition},
		{name: "completed is terminal", from: domain.StatusCompleted, to: "seated", wantErr: ErrInvalidStatusTransition},
		{name: "cancelled is terminal", from: domain.StatusCancelled, to: "confirmed", wantErr: ErrInvalidStatusTransition},
		{name: "unknown status", from: domain.StatusConfirmed, to: "maintenance", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			repo.On("GetByID", mock.Anything, "r1").Return(reservationAt("r1", "19:00", 2, tt.from), nil)
			repo.On("UpdateStatus", mock.Anything, "r1", domain.ReservationStatus(tt.to)).Return(nil)
			svc, m := newService(repo)

			resp, err := svc.UpdateStatus(context.Background(), "r1", &models.UpdateStatusRequest{Status: tt.to})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, resp.Status)
			assert.Equal(t, []string{"updatestatus:ok"}, m.writes)
		})
	}
}

func TestService_Cancel(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, "r1").Return(reservationAt("r1", "19:00", 2, domain.StatusConfirmed), nil)
	repo.On("UpdateStatus", mock.Anything, "r1", domain.StatusCancelled).Return(nil)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, reservationRepo.ErrReservationNotFound)
	svc, m := newService(repo)

	resp, err := svc.Cancel(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)

	_, err = svc.Cancel(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.Equal(t, []string{"cancel:ok", "cancel:error"}, m.writes)
}

func TestService_Cancel_RepositoryError(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, "r1").Return(reservationAt("r1", "19:00", 2, domain.StatusConfirmed), nil)
	repo.On("UpdateStatus", mock.Anything, "r1", domain.StatusCancelled).Return(errors.New("connection reset"))
	svc, _ := newService(repo)

	_, err := svc.Cancel(context.Background(), "r1")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Delete(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Delete", mock.Anything, "r1").Return(nil)
	repo.On("Delete", mock.Anything, "missing").Return(reservationRepo.ErrReservationNotFound)
	svc, _ := newService(repo)

	require.NoError(t, svc.Delete(context.Background(), "r1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), ErrReservationNotFound)
}

func TestService_Dashboard(t *testing.T) {
	repo := &mockRepo{}
	repo.On("List", mock.Anything, domain.ReservationsFilter{Date: &testDay}).Return([]*domain.Reservation{
		reservationAt("a", "20:00", 2, domain.StatusConfirmed),
		reservationAt("b", "12:00", 4, domain.StatusSeated),
		reservationAt("c", "13:00", 3, domain.StatusConfirmed),
		reservationAt("d", "14:00", 2, domain.StatusConfirmed),
		reservationAt("e", "15:00", 6, domain.StatusConfirmed),
		reservationAt("f", "16:00", 2, domain.StatusConfirmed),
		reservationAt("g", "11:00", 2, domain.StatusConfirmed),
		reservationAt("h", "10:00", 5, domain.StatusCompleted),
	}, nil)
	svc, _ := newService(repo)

	resp, err := svc.Dashboard(context.Background(), testDay.Add(15*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, "2025-06-05", resp.Date)
	assert.Equal(t, 8, resp.TotalReservations)
	assert.Equal(t, 26, resp.TotalGuests)
	assert.Equal(t, 6, resp.ConfirmedReservations)
	assert.Equal(t, 1, resp.SeatedReservations)

	require.Len(t, resp.Upcoming, domain.MaxDashboardUpcomingCount)
	starts := make([]string, 0, len(resp.Upcoming))
	for _, r := range resp.Upcoming {
		starts = append(starts, r.StartTime)
	}
	assert.Equal(t, []string{"11:00", "13:00", "14:00", "15:00", "16:00"}, starts)
}

func TestService_Dashboard_Empty(t *testing.T) {
	repo := &mockRepo{}
	repo.On("List", mock.Anything, mock.Anything).Return([]*domain.Reservation{}, nil)
	svc, _ := newService(repo)

	resp, err := svc.Dashboard(context.Background(), testDay)
	require.NoError(t, err)
	assert.Zero(t, resp.TotalReservations)
	assert.NotNil(t, resp.Upcoming)
	assert.Empty(t, resp.Upcoming)
}
