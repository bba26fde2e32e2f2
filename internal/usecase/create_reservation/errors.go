package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrRestaurantNotConfigured возвращается, когда конфигурация ресторана отсутствует или неполна
	ErrRestaurantNotConfigured = errors.New("create_reservation: restaurant is not configured")

	// ErrDateNotAvailable возвращается, когда ресторан закрыт, дата в прошлом или за пределами окна бронирования
	ErrDateNotAvailable = errors.New("create_reservation: date is not available for booking")

	// ErrInvalidTimeSlot возвращается, когда время начала не входит в слоты даты
	ErrInvalidTimeSlot = errors.New("create_reservation: invalid time slot")

	// ErrTooLateToBook возвращается, когда сегодняшний слот уже начался
	ErrTooLateToBook = errors.New("create_reservation: too late to book this slot")

	// ErrTablesNotAvailable возвращается, когда назначенные столы заняты, неактивны или не существуют
	// Список столов доступен через availability.ConflictingTables
	ErrTablesNotAvailable = errors.New("create_reservation: tables are not available")

	// ErrConcurrentUpdate возвращается, когда транзакция не прошла после всех повторов
	ErrConcurrentUpdate = errors.New("create_reservation: concurrent update, try again")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
