package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrRestaurantNotConfigured возвращается, когда конфигурация ресторана отсутствует или неполна
	ErrRestaurantNotConfigured = errors.New("get_available_slots: restaurant is not configured")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
