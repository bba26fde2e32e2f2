package config

import "github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"

// DBExecutor интерфейс для выполнения SQL запросов
type DBExecutor = dbmetrics.DBExecutor
