package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	cancelReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/delete_reservation"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_available_slots"
	getAvailableTablesHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_available_tables"
	getConfigHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_config"
	getDashboardHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_dashboard"
	getReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_reservation"
	getTableStatusesHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_table_statuses"
	getTablesHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_tables"
	listReservationsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_reservations"
	purgeTablesHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/purge_tables"
	replaceTablesHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/replace_tables"
	updateConfigHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_config"
	updateReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_reservation"
	updateReservationStatusHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_reservation_status"
	verifyPasswordHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/verify_password"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/table"
	reservationsService "github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	tablesService "github.com/m04kA/SMC-ReservationService/internal/service/tables"
	createReservationUC "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
	getAvailableTablesUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_tables"
	getTableStatusesUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_table_statuses"
	updateReservationUC "github.com/m04kA/SMC-ReservationService/internal/usecase/update_reservation"
)

const rateLimitCleanupInterval = time.Minute

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configPath)
		},
	}
}

func runServe(configPath string) error {
	a, err := newApp(configPath, true)
	if err != nil {
		return err
	}
	defer a.close()

	log := a.log
	cfg := a.cfg
	log.Info("Starting SMC-ReservationService (timezone=%s)...", a.location)

	// Репозитории
	tableRepository := tableRepo.NewRepository(a.wrappedDB)
	reservationRepository := reservationRepo.NewRepository(a.wrappedDB)

	// Сервисы
	configSvc := a.newConfigService()
	reservationSvc := reservationsService.NewService(reservationRepository, a.txManager, a.metrics, log)
	tableSvc := tablesService.NewService(tableRepository, a.txManager, log)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(configSvc, a.metrics, a.location, log)
	getAvailableTablesUseCase := getAvailableTablesUC.NewUseCase(
		configSvc,
		tableRepository,
		reservationRepository,
		a.metrics,
		a.location,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		configSvc,
		tableRepository,
		reservationRepository,
		a.txManager,
		a.metrics,
		a.location,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		configSvc,
		tableRepository,
		reservationRepository,
		a.txManager,
		a.metrics,
		a.location,
		log,
	)
	getTableStatusesUseCase := getTableStatusesUC.NewUseCase(tableRepository, reservationRepository, a.location, log)

	// Middleware
	adminAuth := middleware.NewAdminAuth(cfg.Admin.PasswordHash, log)
	if !adminAuth.Configured() {
		log.Warn("Admin password hash is not configured, admin routes will answer 503")
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log)
		go runRateLimitCleanup(limiter, a.stopCh)
		log.Info("Rate limit enabled (rps=%.2f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}
	limited := func(h http.HandlerFunc) http.Handler {
		if limiter == nil {
			return h
		}
		return limiter.Middleware(h)
	}

	// Handlers
	getConfig := getConfigHandler.NewHandler(configSvc, log)
	updateConfig := updateConfigHandler.NewHandler(configSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableTables := getAvailableTablesHandler.NewHandler(getAvailableTablesUseCase, log)
	getTableStatuses := getTableStatusesHandler.NewHandler(getTableStatusesUseCase, log)
	getTables := getTablesHandler.NewHandler(tableSvc, log)
	replaceTables := replaceTablesHandler.NewHandler(tableSvc, log)
	purgeTables := purgeTablesHandler.NewHandler(tableSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	getDashboard := getDashboardHandler.NewHandler(
		reservationSvc,
		&getDashboardHandler.RealTimeProvider{Location: a.location},
		log,
	)
	verifyPassword := verifyPasswordHandler.NewHandler(adminAuth, log)

	// Роутер
	r := mux.NewRouter()

	if a.metrics != nil {
		r.Use(middleware.Metrics(a.metrics))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/config", getConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tables", getTables.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tables/available", getAvailableTables.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tables/status", getTableStatuses.Handle).Methods(http.MethodGet)
	api.Handle("/reservations", limited(createReservation.Handle)).Methods(http.MethodPost)
	api.Handle("/verify-password", limited(verifyPassword.Handle)).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (X-Admin-Password)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(adminAuth.Middleware)

	// --- Конфигурация и зал ---
	admin.HandleFunc("/config", updateConfig.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/tables", replaceTables.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/tables/inactive", purgeTables.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}", getReservation.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}", updateReservation.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/reservations/{id}", deleteReservation.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/reservations/{id}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/reservations/{id}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения или падение сервера
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// runRateLimitCleanup периодически удаляет давно неактивных клиентов
func runRateLimitCleanup(limiter *middleware.RateLimiter, stopCh <-chan struct{}) {
	ticker := time.NewTicker(rateLimitCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			limiter.Cleanup()
		case <-stopCh:
			return
		}
	}
}
