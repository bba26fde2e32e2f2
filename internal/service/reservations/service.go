package reservations

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями (чтение, смена статуса, удаление)
type Service struct {
	reservationRepo ReservationRepository
	txManager       TxManager
	metrics         Metrics
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	txManager TxManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ReservationResponse, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: failed to get reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// List получает бронирования по фильтру, упорядоченные по дате и времени начала
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) ([]models.ReservationResponse, error) {
	filter := domain.ReservationsFilter{
		Date:             req.Date,
		IncludeCancelled: req.IncludeCancelled,
		Query:            strings.TrimSpace(req.Query),
	}

	if req.Status != nil {
		status := domain.ReservationStatus(*req.Status)
		if !status.IsValid() {
			s.logger.Warn("List: unknown status %q", *req.Status)
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	return models.FromDomainReservations(reservations), nil
}

// Cancel отменяет бронирование, освобождая его столы
func (s *Service) Cancel(ctx context.Context, id string) (*models.ReservationResponse, error) {
	return s.transition(ctx, "Cancel", id, domain.StatusCancelled)
}

// UpdateStatus меняет статус бронирования по правилам переходов:
// confirmed -> seated | no-show | cancelled, seated -> completed | cancelled
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	status := domain.ReservationStatus(req.Status)
	if !status.IsValid() {
		s.logger.Warn("UpdateStatus: unknown status %q", req.Status)
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	return s.transition(ctx, "UpdateStatus", id, status)
}

func (s *Service) transition(ctx context.Context, op, id string, status domain.ReservationStatus) (*models.ReservationResponse, error) {
	s.logger.Info("%s: reservation id=%s -> %s", op, id, status)

	var updated *domain.Reservation
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Получаем бронирование с блокировкой строки
		reservation, err := s.reservationRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2. Проверяем допустимость перехода
		if !reservation.Status.CanTransitionTo(status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, reservation.Status, status)
		}

		// 3. Сохраняем новый статус
		if err := s.reservationRepo.UpdateStatus(ctx, id, status); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		reservation.Status = status
		updated = reservation
		return nil
	})
	if err != nil {
		s.metrics.IncReservationWrite(strings.ToLower(op), "error")
		switch {
		case errors.Is(err, ErrReservationNotFound):
			s.logger.Warn("%s: reservation id=%s not found", op, id)
		case errors.Is(err, ErrInvalidStatusTransition):
			s.logger.Warn("%s: %v", op, err)
		default:
			s.logger.Error("%s: failed for reservation id=%s: %v", op, id, err)
		}
		return nil, err
	}

	s.metrics.IncReservationWrite(strings.ToLower(op), "ok")
	s.logger.Info("%s: reservation id=%s is now %s", op, id, status)

	return models.FromDomainReservation(updated), nil
}

// Delete удаляет бронирование без возможности восстановления
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		s.metrics.IncReservationWrite("delete", "error")
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%s not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: failed to delete reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: failed to delete reservation: %v", ErrInternal, err)
	}

	s.metrics.IncReservationWrite("delete", "ok")
	s.logger.Info("Delete: reservation id=%s deleted", id)
	return nil
}

// Dashboard сводка за день: число бронирований и гостей, подтвержденные,
// рассаженные и ближайшие подтвержденные бронирования
// Отмененные бронирования не учитываются
func (s *Service) Dashboard(ctx context.Context, date time.Time) (*models.DashboardResponse, error) {
	day := availability.CivilDay(date)

	reservations, err := s.reservationRepo.List(ctx, domain.ReservationsFilter{Date: &day})
	if err != nil {
		s.logger.Error("Dashboard: failed to get reservations for %s: %v", day.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	resp := &models.DashboardResponse{
		Date:     day.Format(domain.DateFormat),
		Upcoming: make([]models.ReservationResponse, 0, domain.MaxDashboardUpcomingCount),
	}

	confirmed := make([]*domain.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.IsCancelled() {
			continue
		}
		resp.TotalReservations++
		resp.TotalGuests += r.PartySize

		switch r.Status {
		case domain.StatusConfirmed:
			resp.ConfirmedReservations++
			confirmed = append(confirmed, r)
		case domain.StatusSeated:
			resp.SeatedReservations++
		}
	}

	sort.SliceStable(confirmed, func(i, j int) bool {
		return confirmed[i].StartTime.IsBefore(confirmed[j].StartTime)
	})
	if len(confirmed) > domain.MaxDashboardUpcomingCount {
		confirmed = confirmed[:domain.MaxDashboardUpcomingCount]
	}
	resp.Upcoming = append(resp.Upcoming, models.FromDomainReservations(confirmed)...)

	return resp, nil
}
