package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func TestStatusOf_SeatedScenario(t *testing.T) {
	reservations := []*domain.Reservation{
		newReservation("R1", thursday, "19:00", "21:00", domain.StatusSeated, "T1"),
	}

	tests := []struct {
		instant types.TimeString
		want    domain.TableStatus
	}{
		{instant: "19:00", want: domain.TableOccupied},
		{instant: "20:00", want: domain.TableOccupied},
		{instant: "21:00", want: domain.TableAvailable},
		{instant: "18:59", want: domain.TableAvailable},
	}

	for _, tt := range tests {
		t.Run(string(tt.instant), func(t *testing.T) {
			got, err := StatusOf("T1", thursday, tt.instant, reservations)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusOf_MapsReservationStatus(t *testing.T) {
	tests := []struct {
		status domain.ReservationStatus
		want   domain.TableStatus
	}{
		{status: domain.StatusConfirmed, want: domain.TableReserved},
		{status: domain.StatusSeated, want: domain.TableOccupied},
		{status: domain.StatusCompleted, want: domain.TableAvailable},
		{status: domain.StatusNoShow, want: domain.TableAvailable},
		{status: domain.StatusCancelled, want: domain.TableAvailable},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			reservations := []*domain.Reservation{
				newReservation("R1", thursday, "19:00", "21:00", tt.status, "T1"),
			}
			got, err := StatusOf("T1", thursday, "20:00", reservations)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusOf_OtherTableAndDate(t *testing.T) {
	reservations := []*domain.Reservation{
		newReservation("R1", thursday, "19:00", "21:00", domain.StatusConfirmed, "T1"),
	}

	got, err := StatusOf("T2", thursday, "20:00", reservations)
	require.NoError(t, err)
	assert.Equal(t, domain.TableAvailable, got)

	got, err = StatusOf("T1", friday, "20:00", reservations)
	require.NoError(t, err)
	assert.Equal(t, domain.TableAvailable, got)
}

func TestStatusOf_CancelledDoesNotHideActive(t *testing.T) {
	reservations := []*domain.Reservation{
		newReservation("R0", thursday, "19:00", "21:00", domain.StatusCancelled, "T1"),
		newReservation("R1", thursday, "19:00", "21:00", domain.StatusConfirmed, "T1"),
	}

	got, err := StatusOf("T1", thursday, "19:30", reservations)
	require.NoError(t, err)
	assert.Equal(t, domain.TableReserved, got)
}

func TestStatusOf_InvalidInstant(t *testing.T) {
	_, err := StatusOf("T1", thursday, "8pm", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCurrentReservation(t *testing.T) {
	r1 := newReservation("R1", thursday, "17:00", "19:00", domain.StatusConfirmed, "T1")
	r2 := newReservation("R2", thursday, "19:00", "21:00", domain.StatusSeated, "T1")

	got, err := CurrentReservation("T1", thursday, "19:00", []*domain.Reservation{r1, r2})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "R2", got.ID)

	got, err = CurrentReservation("T1", thursday, "21:00", []*domain.Reservation{r1, r2})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, domain.TableAvailable, StatusFor(nil))

	seated := newReservation("R1", thursday, "19:00", "21:00", domain.StatusSeated, "T1")
	assert.Equal(t, domain.TableOccupied, StatusFor(seated))

	current, err := CurrentReservation("T1", thursday, "20:00", []*domain.Reservation{seated})
	require.NoError(t, err)
	status, err := StatusOf("T1", thursday, "20:00", []*domain.Reservation{seated})
	require.NoError(t, err)
	assert.Equal(t, status, StatusFor(current))
}
