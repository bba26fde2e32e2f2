package get_available_tables

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_tables: invalid input data")

	// ErrRestaurantNotConfigured возвращается, когда конфигурация ресторана отсутствует или неполна
	ErrRestaurantNotConfigured = errors.New("get_available_tables: restaurant is not configured")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_tables: internal error")
)
