package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func TestResolveSchedule(t *testing.T) {
	cfg := newConfig()

	hours, err := ResolveSchedule(cfg, thursday)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("22:00"), hours.CloseTime)

	hours, err = ResolveSchedule(cfg, friday)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("23:00"), hours.CloseTime)

	sunday := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	hours, err = ResolveSchedule(cfg, sunday)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), hours.OpenTime)
}

func TestResolveSchedule_MissingWeekday(t *testing.T) {
	cfg := newConfig()
	delete(cfg.WorkingHours, time.Thursday)

	_, err := ResolveSchedule(cfg, thursday)
	assert.ErrorIs(t, err, ErrConfigurationIncomplete)

	_, err = GenerateSlots(cfg, thursday)
	assert.ErrorIs(t, err, ErrConfigurationIncomplete)
}

func TestGenerateSlots_Boundary(t *testing.T) {
	cfg := newConfig()

	slots, err := GenerateSlots(cfg, thursday)
	require.NoError(t, err)

	require.Len(t, slots, 23)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("09:30"), slots[1])
	assert.Equal(t, types.TimeString("20:00"), slots[len(slots)-1])

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]))
	}
}

func TestGenerateSlots_ClosedDay(t *testing.T) {
	cfg := newConfig()
	cfg.WorkingHours[time.Thursday] = domain.WorkingHours{IsOpen: false, OpenTime: "09:00", CloseTime: "22:00"}

	slots, err := GenerateSlots(cfg, thursday)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_DayTooShort(t *testing.T) {
	cfg := newConfig()
	cfg.WorkingHours[time.Thursday] = domain.WorkingHours{IsOpen: true, OpenTime: "12:00", CloseTime: "13:30"}

	slots, err := GenerateSlots(cfg, thursday)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_ExactFit(t *testing.T) {
	cfg := newConfig()
	cfg.WorkingHours[time.Thursday] = domain.WorkingHours{IsOpen: true, OpenTime: "12:00", CloseTime: "14:00"}

	slots, err := GenerateSlots(cfg, thursday)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"12:00"}, slots)
}

func TestGenerateSlots_IsRestartable(t *testing.T) {
	cfg := newConfig()

	first, err := GenerateSlots(cfg, friday)
	require.NoError(t, err)
	second, err := GenerateSlots(cfg, friday)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, types.TimeString("21:00"), first[len(first)-1])
}

func TestGenerateSlots_InvalidDurations(t *testing.T) {
	cfg := newConfig()
	cfg.TimeSlotDuration = 0

	_, err := GenerateSlots(cfg, thursday)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestIsSlot(t *testing.T) {
	cfg := newConfig()

	ok, err := IsSlot(cfg, thursday, "19:30")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsSlot(cfg, thursday, "19:15")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = IsSlot(cfg, thursday, "20:30")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = IsSlot(cfg, thursday, "7pm")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEndTime(t *testing.T) {
	cfg := newConfig()

	end, err := EndTime(cfg, "19:00")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("21:00"), end)

	_, err = EndTime(cfg, "23:00")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestIsDateAvailable(t *testing.T) {
	cfg := newConfig()
	today := thursday

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "today", date: today, want: true},
		{name: "yesterday", date: today.AddDate(0, 0, -1), want: false},
		{name: "last day of window", date: today.AddDate(0, 0, 90), want: true},
		{name: "beyond window", date: today.AddDate(0, 0, 91), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsDateAvailable(cfg, tt.date, today)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unlimited window", func(t *testing.T) {
		unlimited := newConfig()
		unlimited.AdvanceBookingDays = 0

		got, err := IsDateAvailable(unlimited, today.AddDate(2, 0, 0), today)
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("closed day", func(t *testing.T) {
		closed := newConfig()
		closed.WorkingHours[time.Friday] = domain.WorkingHours{IsOpen: false}

		got, err := IsDateAvailable(closed, friday, today)
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("time of day ignored", func(t *testing.T) {
		lateToday := time.Date(2025, 6, 5, 23, 30, 0, 0, time.UTC)
		got, err := IsDateAvailable(cfg, thursday, lateToday)
		require.NoError(t, err)
		assert.True(t, got)
	})
}
