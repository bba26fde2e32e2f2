package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusSeated    ReservationStatus = "seated"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusNoShow    ReservationStatus = "no-show"
)

// IsValid returns true if the status is one of the known statuses
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusSeated, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if no further transitions are allowed
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// statusTransitions допустимые переходы статусов
var statusTransitions = map[ReservationStatus][]ReservationStatus{
	StatusConfirmed: {StatusSeated, StatusNoShow, StatusCancelled},
	StatusSeated:    {StatusCompleted, StatusCancelled},
}

// CanTransitionTo returns true if the reservation may move from s to next
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Customer гость, оформивший бронирование
// Хранится вместе с бронированием, отдельной сущностью не является
type Customer struct {
	ID        string
	Name      string
	Phone     string
	Email     *string
	Notes     *string
	VIPStatus bool
}

// Reservation represents a table reservation
type Reservation struct {
	ID              string
	Customer        Customer
	PartySize       int
	Date            time.Time // календарный день, время и зона не используются
	StartTime       types.TimeString
	EndTime         types.TimeString
	TableIDs        []string
	Status          ReservationStatus
	SpecialRequests *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the reservation no longer holds its tables
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// HasTable returns true if tableID is assigned to the reservation
func (r *Reservation) HasTable(tableID string) bool {
	for _, id := range r.TableIDs {
		if id == tableID {
			return true
		}
	}
	return false
}

// ReservationsFilter фильтр для получения списка бронирований
type ReservationsFilter struct {
	Date             *time.Time         // Конкретная дата (опционально)
	Status           *ReservationStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool               // Включать ли отмененные бронирования
	Query            string             // Поиск по имени гостя, телефону или ID (опционально)
}
