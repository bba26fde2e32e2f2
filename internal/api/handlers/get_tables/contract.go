package get_tables

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/tables/models"
)

type TableService interface {
	List(ctx context.Context, req *models.ListTablesRequest) ([]models.TableResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
