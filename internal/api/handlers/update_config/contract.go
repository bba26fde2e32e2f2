package update_config

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/config/models"
)

type ConfigService interface {
	Replace(ctx context.Context, req *models.ReplaceConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
