package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	configService "github.com/m04kA/SMC-ReservationService/internal/service/config"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type stubConfig struct {
	cfg *domain.RestaurantConfig
	err error
}

func (s stubConfig) Current(ctx context.Context) (*domain.RestaurantConfig, error) {
	return s.cfg, s.err
}

type stubTables struct {
	tables []*domain.Table
	err    error
}

func (s stubTables) List(ctx context.Context, filter domain.TablesFilter) ([]*domain.Table, error) {
	return s.tables, s.err
}

// flakyTables возвращает ошибки по очереди, затем отдает столы
type flakyTables struct {
	tables []*domain.Table
	errs   []error
	calls  int
}

func (s *flakyTables) List(ctx context.Context, filter domain.TablesFilter) ([]*domain.Table, error) {
	s.calls++
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		return nil, err
	}
	return s.tables, nil
}

// memoryReservations хранит бронирования в памяти
// createErrs возвращаются из Create по очереди, затем запись проходит
type memoryReservations struct {
	reservations []*domain.Reservation
	createErrs   []error
	listErr      error
}

func (m *memoryReservations) Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	if len(m.createErrs) > 0 {
		err := m.createErrs[0]
		m.createErrs = m.createErrs[1:]
		return nil, err
	}
	r.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r.UpdatedAt = r.CreatedAt
	m.reservations = append(m.reservations, r)
	return r, nil
}

func (m *memoryReservations) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]*domain.Reservation, 0, len(m.reservations))
	for _, r := range m.reservations {
		if filter.Date != nil && !availability.SameDay(r.Date, *filter.Date) {
			continue
		}
		if !filter.IncludeCancelled && r.IsCancelled() {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

// retryingTx повторяет fn при конфликте сериализации, как настоящий менеджер
type retryingTx struct {
	attempts   int
	maxRetries int
}

func (tx *retryingTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for i := 0; i <= tx.maxRetries; i++ {
		tx.attempts++
		err = fn(ctx)
		if !txmanager.IsSerializationFailure(err) {
			return err
		}
	}
	return err
}

type recordingMetrics struct {
	writes    []string
	conflicts int
}

func (m *recordingMetrics) IncReservationWrite(operation, result string) {
	m.writes = append(m.writes, operation+":"+result)
}

func (m *recordingMetrics) IncConflict() {
	m.conflicts++
}

type sequentialIDs struct {
	next int
}

func (g *sequentialIDs) NewID() string {
	g.next++
	return fmt.Sprintf("id-%d", g.next)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

// Четверг, 5 июня 2025, ресторан открыт 09:00-22:00
var thursday = time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

func restaurantTables() []*domain.Table {
	return []*domain.Table{
		{ID: "in-1", Name: "Table 1", Area: domain.AreaInside, Capacity: domain.Capacity{Min: 2, Max: 4}, IsActive: true},
		{ID: "in-2", Name: "Table 2", Area: domain.AreaInside, Capacity: domain.Capacity{Min: 2, Max: 4}, IsActive: true},
		{ID: "in-3", Name: "Table 3", Area: domain.AreaInside, Capacity: domain.Capacity{Min: 4, Max: 6}, IsActive: false},
	}
}

type fixture struct {
	uc           *UseCase
	reservations *memoryReservations
	tx           *retryingTx
	metrics      *recordingMetrics
}

func newFixture(now time.Time) *fixture {
	f := &fixture{
		reservations: &memoryReservations{},
		tx:           &retryingTx{maxRetries: txmanager.DefaultMaxRetries},
		metrics:      &recordingMetrics{},
	}
	f.uc = NewUseCase(
		stubConfig{cfg: domain.DefaultRestaurantConfig()},
		stubTables{tables: restaurantTables()},
		f.reservations,
		f.tx,
		f.metrics,
		time.UTC,
		logger.Nop(),
	)
	f.uc.idGenerator = &sequentialIDs{}
	f.uc.timeProvider = fixedTime{now: now}
	return f
}

func validRequest() *Request {
	return &Request{
		Customer: Customer{
			Name:  " Jane Smith ",
			Phone: "+15550100",
			Email: ptr.Ptr("jane@example.com"),
		},
		PartySize:       4,
		Date:            thursday,
		StartTime:       "19:00",
		TableIDs:        []string{"in-1"},
		SpecialRequests: ptr.Ptr("window seat"),
	}
}

func TestExecute_CreatesConfirmedReservation(t *testing.T) {
	f := newFixture(thursday.Add(10 * time.Hour))

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	r := resp.Reservation
	assert.Equal(t, "id-2", r.ID)
	assert.Equal(t, "id-1", r.Customer.ID)
	assert.Equal(t, "Jane Smith", r.Customer.Name)
	assert.Equal(t, domain.StatusConfirmed, r.Status)
	assert.Equal(t, types.TimeString("19:00"), r.StartTime)
	assert.Equal(t, types.TimeString("21:00"), r.EndTime)
	assert.Equal(t, []string{"in-1"}, r.TableIDs)
	assert.Equal(t, []string{"create:ok"}, f.metrics.writes)
	assert.Len(t, f.reservations.reservations, 1)
}

func TestExecute_KeepsCustomerID(t *testing.T) {
	f := newFixture(thursday)
	req := validRequest()
	req.Customer.ID = "guest-42"

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "guest-42", resp.Reservation.Customer.ID)
	assert.Equal(t, "id-1", resp.Reservation.ID)
}

func TestExecute_ConflictingTables(t *testing.T) {
	f := newFixture(thursday)
	f.reservations.reservations = []*domain.Reservation{{
		ID:        "existing",
		PartySize: 2,
		Date:      thursday,
		StartTime: "18:00",
		EndTime:   "20:00",
		TableIDs:  []string{"in-2"},
		Status:    domain.StatusSeated,
	}}

	req := validRequest()
	req.TableIDs = []string{"in-1", "in-2", "in-3", "patio-9"}

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrTablesNotAvailable)
	require.ErrorIs(t, err, availability.ErrConflictDetected)

	tables, ok := availability.ConflictingTables(err)
	require.True(t, ok)
	assert.Equal(t, []string{"in-2", "in-3", "patio-9"}, tables)
	assert.Equal(t, 1, f.metrics.conflicts)
	assert.Len(t, f.reservations.reservations, 1)
}

func TestExecute_CancelledReservationDoesNotBlock(t *testing.T) {
	f := newFixture(thursday)
	f.reservations.reservations = []*domain.Reservation{{
		ID:        "old",
		PartySize: 2,
		Date:      thursday,
		StartTime: "19:00",
		EndTime:   "21:00",
		TableIDs:  []string{"in-1"},
		Status:    domain.StatusCancelled,
	}}

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecute_AdjacentReservationDoesNotBlock(t *testing.T) {
	f := newFixture(thursday)
	f.reservations.reservations = []*domain.Reservation{{
		ID:        "before",
		PartySize: 2,
		Date:      thursday,
		StartTime: "17:00",
		EndTime:   "19:00",
		TableIDs:  []string{"in-1"},
		Status:    domain.StatusConfirmed,
	}}

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecute_RetriesSerializationFailure(t *testing.T) {
	f := newFixture(thursday)
	f.reservations.createErrs = []error{
		fmt.Errorf("%w: Create: %v", txmanager.ErrSerializationFailure, &pq.Error{Code: "40001"}),
	}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotNil(t, resp.Reservation)
	assert.Equal(t, 2, f.tx.attempts)
}

func TestExecute_RetriesSerializationFailureFromTables(t *testing.T) {
	f := newFixture(thursday)
	tables := &flakyTables{
		tables: restaurantTables(),
		errs: []error{
			fmt.Errorf("%w: List: %v", txmanager.ErrSerializationFailure, &pq.Error{Code: "40001"}),
		},
	}
	f.uc.tableRepo = tables

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotNil(t, resp.Reservation)
	assert.Equal(t, 2, f.tx.attempts)
	assert.Equal(t, 2, tables.calls)
}

func TestExecute_SerializationRetriesExhausted(t *testing.T) {
	f := newFixture(thursday)
	for i := 0; i <= txmanager.DefaultMaxRetries; i++ {
		f.reservations.createErrs = append(f.reservations.createErrs, txmanager.ErrSerializationFailure)
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrConcurrentUpdate)
	assert.Equal(t, txmanager.DefaultMaxRetries+1, f.tx.attempts)
}

func TestExecute_ExclusionViolationBecomesConflict(t *testing.T) {
	f := newFixture(thursday)
	f.reservations.createErrs = []error{&reservationRepo.TableBookedError{TableID: "in-1"}}

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrTablesNotAvailable)

	tables, ok := availability.ConflictingTables(err)
	require.True(t, ok)
	assert.Equal(t, []string{"in-1"}, tables)
}

func TestExecute_ScheduleErrors(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		mutate  func(req *Request)
		wantErr error
	}{
		{name: "past date", now: thursday.AddDate(0, 0, 1), wantErr: ErrDateNotAvailable},
		{name: "beyond advance window", now: thursday, mutate: func(req *Request) { req.Date = thursday.AddDate(0, 0, 91) }, wantErr: ErrDateNotAvailable},
		{name: "not on slot grid", now: thursday, mutate: func(req *Request) { req.StartTime = "19:10" }, wantErr: ErrInvalidTimeSlot},
		{name: "after last slot", now: thursday, mutate: func(req *Request) { req.StartTime = "20:30" }, wantErr: ErrInvalidTimeSlot},
		{name: "before opening", now: thursday, mutate: func(req *Request) { req.StartTime = "08:30" }, wantErr: ErrInvalidTimeSlot},
		{name: "slot already started", now: thursday.Add(19*time.Hour + time.Minute), wantErr: ErrTooLateToBook},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.now)
			req := validRequest()
			if tt.mutate != nil {
				tt.mutate(req)
			}

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.tx.attempts)
		})
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "empty name", mutate: func(req *Request) { req.Customer.Name = "  " }},
		{name: "empty phone", mutate: func(req *Request) { req.Customer.Phone = "" }},
		{name: "zero party", mutate: func(req *Request) { req.PartySize = 0 }},
		{name: "no tables", mutate: func(req *Request) { req.TableIDs = nil }},
		{name: "duplicate tables", mutate: func(req *Request) { req.TableIDs = []string{"in-1", "in-1"} }},
		{name: "bad start time", mutate: func(req *Request) { req.StartTime = "25:00" }},
		{name: "missing date", mutate: func(req *Request) { req.Date = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(thursday)
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, f.reservations.reservations)
		})
	}
}

func TestExecute_ConfigErrors(t *testing.T) {
	f := newFixture(thursday)
	f.uc.configProvider = stubConfig{err: configService.ErrConfigNotFound}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRestaurantNotConfigured)

	f.uc.configProvider = stubConfig{err: errors.New("redis and postgres are down")}
	_, err = f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_RepositoryError(t *testing.T) {
	f := newFixture(thursday)
	f.reservations.listErr = errors.New("connection reset")

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, []string{"create:error"}, f.metrics.writes)
}
