package config

import "errors"

var (
	// ErrCacheMiss возвращается, когда снимка конфигурации нет в кэше
	ErrCacheMiss = errors.New("config.cache: cache miss")

	// ErrCache возвращается при ошибках обращения к Redis или разбора снимка
	ErrCache = errors.New("config.cache: redis error")
)
