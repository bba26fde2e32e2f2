package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модели

// ListTablesRequest запрос на получение столов
type ListTablesRequest struct {
	Area            *string // bar | inside | outside, nil = все зоны
	IncludeInactive bool
}

// ReplaceLayoutRequest запрос на замену схемы зала
// Столы, которых нет в запросе, деактивируются
type ReplaceLayoutRequest struct {
	Tables []Table `json:"tables"`
}

// Capacity вместимость стола
type Capacity struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Position координаты стола на схеме зала
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Table стол в запросе на замену схемы
type Table struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Area         string   `json:"area" yaml:"area"`
	Capacity     Capacity `json:"capacity" yaml:"capacity"`
	IsAdjustable bool     `json:"isAdjustable" yaml:"isAdjustable"`
	Position     Position `json:"position" yaml:"position"`
}

// Response модели

// TableResponse ответ с данными стола
type TableResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Area         string    `json:"area"`
	Capacity     Capacity  `json:"capacity"`
	IsAdjustable bool      `json:"isAdjustable"`
	Position     Position  `json:"position"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ReplaceLayoutResponse ответ на замену схемы зала
type ReplaceLayoutResponse struct {
	Tables      []TableResponse `json:"tables"`
	Deactivated int64           `json:"deactivated"`
}

// PurgeResponse ответ на удаление неактивных столов
type PurgeResponse struct {
	Deleted int64 `json:"deleted"`
}

// Методы конвертации

// ToDomain конвертирует DTO в domain модель (стол всегда активен)
func (t Table) ToDomain() *domain.Table {
	return &domain.Table{
		ID:           t.ID,
		Name:         t.Name,
		Area:         domain.TableArea(t.Area),
		Capacity:     domain.Capacity{Min: t.Capacity.Min, Max: t.Capacity.Max},
		IsAdjustable: t.IsAdjustable,
		Position:     domain.Position{X: t.Position.X, Y: t.Position.Y},
		IsActive:     true,
	}
}

// FromDomainTable конвертирует domain модель в DTO
func FromDomainTable(t *domain.Table) TableResponse {
	return TableResponse{
		ID:           t.ID,
		Name:         t.Name,
		Area:         string(t.Area),
		Capacity:     Capacity{Min: t.Capacity.Min, Max: t.Capacity.Max},
		IsAdjustable: t.IsAdjustable,
		Position:     Position{X: t.Position.X, Y: t.Position.Y},
		IsActive:     t.IsActive,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// FromDomainTables конвертирует список domain моделей в DTO
func FromDomainTables(tables []*domain.Table) []TableResponse {
	result := make([]TableResponse, 0, len(tables))
	for _, t := range tables {
		result = append(result, FromDomainTable(t))
	}
	return result
}
