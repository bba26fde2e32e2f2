package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCapacity_Fits(t *testing.T) {
	c := Capacity{Min: 2, Max: 4}

	for _, size := range []int{2, 3, 4} {
		assert.True(t, c.Fits(size), "party of %d", size)
	}
	for _, size := range []int{1, 5} {
		assert.False(t, c.Fits(size), "party of %d", size)
	}
}

func TestReservationStatus_Transitions(t *testing.T) {
	tests := []struct {
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{StatusConfirmed, StatusSeated, true},
		{StatusConfirmed, StatusNoShow, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, false},
		{StatusSeated, StatusCompleted, true},
		{StatusSeated, StatusCancelled, true},
		{StatusSeated, StatusNoShow, false},
		{StatusCompleted, StatusSeated, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusNoShow, StatusSeated, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestReservationStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusSeated.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusNoShow.IsTerminal())
	assert.False(t, ReservationStatus("maintenance").IsValid())
}

func TestTableArea_IsValid(t *testing.T) {
	assert.True(t, AreaBar.IsValid())
	assert.True(t, AreaInside.IsValid())
	assert.True(t, AreaOutside.IsValid())
	assert.False(t, TableArea("terrace").IsValid())
}

func TestDefaultRestaurantConfig(t *testing.T) {
	cfg := DefaultRestaurantConfig()

	assert.Len(t, cfg.WorkingHours, 7)
	assert.Equal(t, WorkingHours{IsOpen: true, OpenTime: "10:00", CloseTime: "21:00"}, cfg.WorkingHours[time.Sunday])
	assert.Equal(t, WorkingHours{IsOpen: true, OpenTime: "09:00", CloseTime: "22:00"}, cfg.WorkingHours[time.Thursday])
	assert.Equal(t, WorkingHours{IsOpen: true, OpenTime: "09:00", CloseTime: "23:00"}, cfg.WorkingHours[time.Saturday])
	assert.Equal(t, 30, cfg.TimeSlotDuration)
	assert.Equal(t, 120, cfg.ReservationDuration)
	assert.True(t, cfg.HasAdvanceBookingLimit())
}

func TestReservation_HasTable(t *testing.T) {
	r := &Reservation{TableIDs: []string{"in-1", "in-2"}}
	assert.True(t, r.HasTable("in-2"))
	assert.False(t, r.HasTable("bar-1"))
}
