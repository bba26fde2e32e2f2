package config

import "errors"

var (
	// ErrConfigNotFound возвращается, когда строки restaurant_config еще нет (до migrate)
	ErrConfigNotFound = errors.New("config.repository: restaurant config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("config.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("config.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("config.repository: failed to scan row")
)
