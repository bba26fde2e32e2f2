package domain

import "time"

// TableArea зона зала, в которой стоит стол
type TableArea string

const (
	AreaBar     TableArea = "bar"
	AreaInside  TableArea = "inside"
	AreaOutside TableArea = "outside"
)

// IsValid returns true if the area is one of the known areas
func (a TableArea) IsValid() bool {
	switch a {
	case AreaBar, AreaInside, AreaOutside:
		return true
	default:
		return false
	}
}

// Capacity допустимый размер компании за столом (включительно)
type Capacity struct {
	Min int
	Max int
}

// Fits returns true if partySize is within [Min, Max]
func (c Capacity) Fits(partySize int) bool {
	return c.Min <= partySize && partySize <= c.Max
}

// Position координаты стола на схеме зала (только для отображения)
type Position struct {
	X float64
	Y float64
}

// Table represents a physical table in the restaurant
type Table struct {
	ID           string
	Name         string
	Area         TableArea
	Capacity     Capacity
	IsAdjustable bool // вместимость можно расширить вручную, ядро это не учитывает
	Position     Position
	IsActive     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TablesFilter фильтр для получения списка столов
type TablesFilter struct {
	Area            *TableArea // Фильтр по зоне (опционально)
	IncludeInactive bool       // Включать ли деактивированные столы
}
