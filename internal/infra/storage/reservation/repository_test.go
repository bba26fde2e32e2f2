package reservation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

func TestMapWriteError(t *testing.T) {
	t.Run("exclusion violation becomes table booked", func(t *testing.T) {
		err := mapWriteError("Create", &pq.Error{
			Code:   pgExclusionViolation,
			Detail: `Key (table_id, tsrange(reservation_date + start_time, reservation_date + end_time, '[)'::text))=(in-2, ["2025-06-05 19:00:00","2025-06-05 21:00:00")) conflicts with existing key (table_id, tsrange(reservation_date + start_time, reservation_date + end_time, '[)'::text))=(in-2, ["2025-06-05 18:00:00","2025-06-05 20:00:00")).`,
		})

		require.ErrorIs(t, err, ErrTableAlreadyBooked)
		var booked *TableBookedError
		require.True(t, errors.As(err, &booked))
		assert.Equal(t, "in-2", booked.TableID)
	})

	t.Run("foreign key violation becomes table not found", func(t *testing.T) {
		err := mapWriteError("insertTables", &pq.Error{Code: pgForeignKeyViolation})
		assert.ErrorIs(t, err, ErrTableNotFound)
	})

	t.Run("serialization failure stays retryable", func(t *testing.T) {
		err := mapWriteError("Create", &pq.Error{Code: pgSerializationFail})
		assert.ErrorIs(t, err, txmanager.ErrSerializationFailure)
		assert.True(t, txmanager.IsSerializationFailure(err))
	})

	t.Run("malformed uuid becomes not found", func(t *testing.T) {
		err := mapWriteError("Delete", &pq.Error{Code: pgInvalidTextRepresentation, Message: `invalid input syntax for type uuid: "abc"`})
		assert.ErrorIs(t, err, ErrReservationNotFound)
		assert.NotErrorIs(t, err, ErrExecQuery)
	})

	t.Run("wrapped pq errors are recognised", func(t *testing.T) {
		err := mapWriteError("Create", fmt.Errorf("exec: %w", &pq.Error{Code: pgSerializationFail}))
		assert.True(t, txmanager.IsSerializationFailure(err))
	})

	t.Run("other errors become exec errors", func(t *testing.T) {
		assert.ErrorIs(t, mapWriteError("Create", errors.New("connection reset")), ErrExecQuery)
		assert.ErrorIs(t, mapWriteError("Create", &pq.Error{Code: "23505"}), ErrExecQuery)
	})
}

func TestTableFromDetail(t *testing.T) {
	assert.Equal(t, "bar-1", tableFromDetail(`Key (table_id, tsrange(a, b))=(bar-1, ["x","y")) conflicts with existing key`))
	assert.Empty(t, tableFromDetail(""))
	assert.Empty(t, tableFromDetail("unexpected detail"))
}

func TestTableBookedError_Message(t *testing.T) {
	assert.Equal(t, ErrTableAlreadyBooked.Error()+": out-1", (&TableBookedError{TableID: "out-1"}).Error())
	assert.Equal(t, ErrTableAlreadyBooked.Error(), (&TableBookedError{}).Error())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%\_off\\`, escapeLike(`50%_off\`))
	assert.Equal(t, "Smith", escapeLike("Smith"))
}

func TestMapScanError(t *testing.T) {
	t.Run("malformed uuid on GetByID becomes not found", func(t *testing.T) {
		err := mapScanError("GetByID - scan reservation", &pq.Error{Code: pgInvalidTextRepresentation})
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("serialization failure on read stays retryable", func(t *testing.T) {
		err := mapScanError("List - rows error", &pq.Error{Code: pgSerializationFail})
		assert.True(t, txmanager.IsSerializationFailure(err))
	})

	t.Run("other errors become scan errors", func(t *testing.T) {
		assert.ErrorIs(t, mapScanError("List", errors.New("bad column")), ErrScanRow)
	})
}
