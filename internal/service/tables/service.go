package tables

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/tables/models"
)

// Service сервис для работы со схемой зала
type Service struct {
	tableRepo TableRepository
	txManager TxManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса столов
func NewService(tableRepo TableRepository, txManager TxManager, logger Logger) *Service {
	return &Service{
		tableRepo: tableRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// List возвращает столы, опционально только одной зоны
func (s *Service) List(ctx context.Context, req *models.ListTablesRequest) ([]models.TableResponse, error) {
	filter := domain.TablesFilter{IncludeInactive: req.IncludeInactive}

	if req.Area != nil {
		area := domain.TableArea(*req.Area)
		if !area.IsValid() {
			s.logger.Warn("List: unknown area %q", *req.Area)
			return nil, fmt.Errorf("%w: unknown area %q", ErrInvalidInput, *req.Area)
		}
		filter.Area = &area
	}

	tables, err := s.tableRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: failed to get tables: %v", err)
		return nil, fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
	}

	return models.FromDomainTables(tables), nil
}

// ReplaceLayout заменяет схему зала
// 1. Валидирует каждый стол и уникальность ID
// 2. В одной транзакции создает/обновляет столы из запроса
// 3. Деактивирует столы, которых нет в запросе (бронирования на них сохраняются)
func (s *Service) ReplaceLayout(ctx context.Context, req *models.ReplaceLayoutRequest) (*models.ReplaceLayoutResponse, error) {
	s.logger.Info("ReplaceLayout: replacing layout with %d tables", len(req.Tables))

	tables, err := validateLayout(req.Tables)
	if err != nil {
		s.logger.Warn("ReplaceLayout: validation failed: %v", err)
		return nil, err
	}

	keepIDs := make([]string, 0, len(tables))
	saved := make([]*domain.Table, 0, len(tables))
	var deactivated int64

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		for _, t := range tables {
			upserted, err := s.tableRepo.Upsert(ctx, t)
			if err != nil {
				return fmt.Errorf("upsert table %s: %v", t.ID, err)
			}
			saved = append(saved, upserted)
			keepIDs = append(keepIDs, t.ID)
		}

		count, err := s.tableRepo.DeactivateExcept(ctx, keepIDs)
		if err != nil {
			return fmt.Errorf("deactivate tables: %v", err)
		}
		deactivated = count
		return nil
	})
	if err != nil {
		s.logger.Error("ReplaceLayout: failed to save layout: %v", err)
		return nil, fmt.Errorf("%w: failed to save layout: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceLayout: saved %d tables, deactivated %d", len(saved), deactivated)

	return &models.ReplaceLayoutResponse{
		Tables:      models.FromDomainTables(saved),
		Deactivated: deactivated,
	}, nil
}

// PurgeInactive удаляет неактивные столы, на которые не ссылаются бронирования
func (s *Service) PurgeInactive(ctx context.Context) (*models.PurgeResponse, error) {
	deleted, err := s.tableRepo.DeleteInactive(ctx)
	if err != nil {
		s.logger.Error("PurgeInactive: failed to delete inactive tables: %v", err)
		return nil, fmt.Errorf("%w: failed to delete inactive tables: %v", ErrInternal, err)
	}

	s.logger.Info("PurgeInactive: deleted %d inactive tables", deleted)
	return &models.PurgeResponse{Deleted: deleted}, nil
}

func validateLayout(input []models.Table) ([]*domain.Table, error) {
	seen := make(map[string]struct{}, len(input))
	tables := make([]*domain.Table, 0, len(input))

	for _, dto := range input {
		t := dto.ToDomain()
		if err := availability.ValidateTable(t); err != nil {
			return nil, fmt.Errorf("%w: table %q: %v", ErrInvalidInput, t.ID, err)
		}
		if t.Name == "" || len(t.Name) > domain.MaxNameLength {
			return nil, fmt.Errorf("%w: table %q: name must be 1..%d characters", ErrInvalidInput, t.ID, domain.MaxNameLength)
		}
		if _, ok := seen[t.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate table id %q", ErrInvalidInput, t.ID)
		}
		seen[t.ID] = struct{}{}
		tables = append(tables, t)
	}

	return tables, nil
}
