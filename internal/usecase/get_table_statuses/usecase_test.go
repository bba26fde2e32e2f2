package get_table_statuses

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type stubTables struct {
	tables []*domain.Table
	err    error
}

func (s stubTables) List(ctx context.Context, filter domain.TablesFilter) ([]*domain.Table, error) {
	return s.tables, s.err
}

type stubReservations struct {
	reservations []*domain.Reservation
	err          error
	lastFilter   *domain.ReservationsFilter
}

func (s *stubReservations) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	s.lastFilter = &filter
	return s.reservations, s.err
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

var thursday = time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

func layout() []*domain.Table {
	return []*domain.Table{
		{ID: "in-1", Name: "Table 1", Area: domain.AreaInside, Capacity: domain.Capacity{Min: 2, Max: 4}, IsActive: true},
		{ID: "in-2", Name: "Table 2", Area: domain.AreaInside, Capacity: domain.Capacity{Min: 2, Max: 4}, IsActive: true},
		{ID: "out-1", Name: "Patio 1", Area: domain.AreaOutside, Capacity: domain.Capacity{Min: 2, Max: 6}, IsActive: true},
		{ID: "bar-1", Name: "Bar 1", Area: domain.AreaBar, Capacity: domain.Capacity{Min: 1, Max: 2}, IsActive: true},
	}
}

func dayReservations() []*domain.Reservation {
	reservation := func(id, start, end string, status domain.ReservationStatus, tables ...string) *domain.Reservation {
		return &domain.Reservation{
			ID:        id,
			PartySize: 2,
			Date:      thursday,
			StartTime: types.TimeString(start),
			EndTime:   types.TimeString(end),
			TableIDs:  tables,
			Status:    status,
		}
	}
	return []*domain.Reservation{
		reservation("r1", "18:00", "20:00", domain.StatusConfirmed, "in-1"),
		reservation("r2", "18:30", "20:30", domain.StatusSeated, "in-2", "out-1"),
		reservation("r3", "19:00", "21:00", domain.StatusCancelled, "bar-1"),
	}
}

func newUseCase(tables TableRepository, reservations ReservationRepository, now time.Time) *UseCase {
	uc := NewUseCase(tables, reservations, time.UTC, logger.Nop())
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func statusByTable(resp *Response) map[string]domain.TableStatus {
	result := make(map[string]domain.TableStatus, len(resp.Tables))
	for _, ts := range resp.Tables {
		result[ts.Table.ID] = ts.Status
	}
	return result
}

func TestExecute_ResolvesStatuses(t *testing.T) {
	reservations := &stubReservations{reservations: dayReservations()}
	uc := newUseCase(stubTables{tables: layout()}, reservations, thursday)

	resp, err := uc.Execute(context.Background(), &Request{Date: ptr.Ptr(thursday), Time: ptr.Ptr(types.TimeString("19:00"))})
	require.NoError(t, err)

	assert.Equal(t, map[string]domain.TableStatus{
		"in-1":  domain.TableReserved,
		"in-2":  domain.TableOccupied,
		"out-1": domain.TableOccupied,
		"bar-1": domain.TableAvailable,
	}, statusByTable(resp))

	require.Len(t, resp.Tables, 4)
	assert.Equal(t, "in-1", resp.Tables[0].Table.ID)
	require.NotNil(t, resp.Tables[0].Reservation)
	assert.Equal(t, "r1", resp.Tables[0].Reservation.ID)
	assert.Nil(t, resp.Tables[3].Reservation)

	require.NotNil(t, reservations.lastFilter)
	assert.Equal(t, thursday, *reservations.lastFilter.Date)
}

func TestExecute_StatusMatchesReturnedReservation(t *testing.T) {
	uc := newUseCase(stubTables{tables: layout()}, &stubReservations{reservations: dayReservations()}, thursday)

	for _, instant := range []types.TimeString{"17:00", "18:00", "18:45", "19:30", "20:15", "21:00"} {
		resp, err := uc.Execute(context.Background(), &Request{Date: ptr.Ptr(thursday), Time: ptr.Ptr(instant)})
		require.NoError(t, err)

		for _, ts := range resp.Tables {
			if ts.Reservation == nil {
				assert.Equal(t, domain.TableAvailable, ts.Status, "%s at %s", ts.Table.ID, instant)
				continue
			}
			assert.Equal(t, availability.StatusFor(ts.Reservation), ts.Status, "%s at %s", ts.Table.ID, instant)
			assert.NotEqual(t, domain.StatusCancelled, ts.Reservation.Status)
		}
	}
}

func TestExecute_EndBoundaryIsFree(t *testing.T) {
	uc := newUseCase(stubTables{tables: layout()}, &stubReservations{reservations: dayReservations()}, thursday)

	resp, err := uc.Execute(context.Background(), &Request{Date: ptr.Ptr(thursday), Time: ptr.Ptr(types.TimeString("20:00"))})
	require.NoError(t, err)

	statuses := statusByTable(resp)
	assert.Equal(t, domain.TableAvailable, statuses["in-1"])
	assert.Equal(t, domain.TableOccupied, statuses["in-2"])
}

func TestExecute_DefaultsToNow(t *testing.T) {
	now := thursday.Add(18*time.Hour + 15*time.Minute + 42*time.Second)
	uc := newUseCase(stubTables{tables: layout()}, &stubReservations{reservations: dayReservations()}, now)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, thursday, resp.Date)
	assert.Equal(t, types.TimeString("18:15"), resp.Time)
	statuses := statusByTable(resp)
	assert.Equal(t, domain.TableReserved, statuses["in-1"])
	assert.Equal(t, domain.TableAvailable, statuses["in-2"])
}

func TestExecute_Errors(t *testing.T) {
	t.Run("invalid time", func(t *testing.T) {
		uc := newUseCase(stubTables{}, &stubReservations{}, thursday)
		_, err := uc.Execute(context.Background(), &Request{Time: ptr.Ptr(types.TimeString("7pm"))})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("tables failure", func(t *testing.T) {
		uc := newUseCase(stubTables{err: errors.New("db down")}, &stubReservations{}, thursday)
		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("reservations failure", func(t *testing.T) {
		uc := newUseCase(stubTables{tables: layout()}, &stubReservations{err: errors.New("db down")}, thursday)
		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
