package get_table_statuses

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_table_statuses: invalid input data")
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_table_statuses: internal error")
)
