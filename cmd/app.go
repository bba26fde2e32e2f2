package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ReservationService/internal/config"
	configCache "github.com/m04kA/SMC-ReservationService/internal/infra/cache/config"
	configRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/config"
	configService "github.com/m04kA/SMC-ReservationService/internal/service/config"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

const pingTimeout = 5 * time.Second

// app общие зависимости всех команд
type app struct {
	cfg       *config.Config
	log       *logger.Logger
	location  *time.Location
	metrics   *metrics.Metrics
	db        *sql.DB
	wrappedDB *dbmetrics.DB
	txManager *txmanager.TransactionManager
	redis     *redis.Client
	stopCh    chan struct{}
}

// newApp загружает конфигурацию, поднимает логгер и подключение к базе
// withMetrics включает сбор метрик, если они разрешены в конфигурации
func newApp(configPath string, withMetrics bool) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	location, err := cfg.Restaurant.Location()
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to load timezone: %w", err)
	}

	a := &app{
		cfg:      cfg,
		log:      log,
		location: location,
		stopCh:   make(chan struct{}),
	}

	if withMetrics && cfg.Metrics.Enabled {
		a.metrics = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		log.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	a.db = db
	if a.metrics != nil {
		a.wrappedDB = dbmetrics.WrapWithDefault(db, a.metrics, a.stopCh)
		log.Info("Database metrics collection started")
	} else {
		a.wrappedDB = dbmetrics.Wrap(db, nil)
	}
	a.txManager = txmanager.NewTransactionManager(a.wrappedDB).WithRetryObserver(a.metrics)

	return a, nil
}

// newConfigService сервис конфигурации с кэшем в Redis, если он включен
func (a *app) newConfigService() *configService.Service {
	var cache configService.ConfigCache
	if a.cfg.Redis.Enabled {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     a.cfg.Redis.Address,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		cache = configCache.NewCache(a.redis, a.cfg.Redis.ConfigTTLDuration())
		a.log.Info("Config cache enabled (redis=%s, ttl=%s)", a.cfg.Redis.Address, a.cfg.Redis.ConfigTTLDuration())
	}

	return configService.NewService(configRepo.NewRepository(a.wrappedDB), cache, a.txManager, a.log)
}

func (a *app) close() {
	close(a.stopCh)
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("Failed to close redis client: %v", err)
		}
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn("Failed to close database: %v", err)
	}
	a.log.Close()
}
