package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrTableAlreadyBooked возвращается, когда база отклонила пересекающееся бронирование стола
	ErrTableAlreadyBooked = errors.New("reservation.repository: table already booked for this time")

	// ErrTableNotFound возвращается, когда бронирование ссылается на несуществующий стол
	ErrTableNotFound = errors.New("reservation.repository: table not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
