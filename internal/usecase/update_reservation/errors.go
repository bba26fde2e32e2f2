package update_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrReservationClosed возвращается при попытке изменить завершенное, отмененное или неявившееся бронирование
	ErrReservationClosed = errors.New("update_reservation: reservation can no longer be changed")

	// ErrRestaurantNotConfigured возвращается, когда конфигурация ресторана отсутствует или неполна
	ErrRestaurantNotConfigured = errors.New("update_reservation: restaurant is not configured")

	// ErrDateNotAvailable возвращается, когда новая дата недоступна для бронирования
	ErrDateNotAvailable = errors.New("update_reservation: date is not available for booking")

	// ErrInvalidTimeSlot возвращается, когда новое время начала не входит в слоты даты
	ErrInvalidTimeSlot = errors.New("update_reservation: invalid time slot")

	// ErrTooLateToBook возвращается, когда новый сегодняшний слот уже начался
	ErrTooLateToBook = errors.New("update_reservation: too late to book this slot")

	// ErrTablesNotAvailable возвращается, когда назначенные столы заняты, неактивны или не существуют
	ErrTablesNotAvailable = errors.New("update_reservation: tables are not available")

	// ErrConcurrentUpdate возвращается, когда транзакция не прошла после всех повторов
	ErrConcurrentUpdate = errors.New("update_reservation: concurrent update, try again")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
