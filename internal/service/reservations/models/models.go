package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модели

// ListReservationsRequest запрос на получение списка бронирований
type ListReservationsRequest struct {
	Date             *time.Time // Конкретная дата (опционально)
	Status           *string    // Фильтр по статусу (опционально)
	IncludeCancelled bool       // Включать отмененные
	Query            string     // Поиск по имени, телефону или ID
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// CustomerResponse данные гостя
type CustomerResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	VIPStatus bool    `json:"vipStatus"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID              string           `json:"id"`
	Customer        CustomerResponse `json:"customer"`
	PartySize       int              `json:"partySize"`
	Date            string           `json:"date"`      // "2025-10-15"
	StartTime       string           `json:"startTime"` // "19:00"
	EndTime         string           `json:"endTime"`   // "21:00"
	TableIDs        []string         `json:"tableIds"`
	Status          string           `json:"status"`
	SpecialRequests *string          `json:"specialRequests,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// DashboardResponse сводка по бронированиям за день
type DashboardResponse struct {
	Date                  string                `json:"date"`
	TotalReservations     int                   `json:"totalReservations"`
	TotalGuests           int                   `json:"totalGuests"`
	ConfirmedReservations int                   `json:"confirmedReservations"`
	SeatedReservations    int                   `json:"seatedReservations"`
	Upcoming              []ReservationResponse `json:"upcoming"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	tableIDs := r.TableIDs
	if tableIDs == nil {
		tableIDs = []string{}
	}

	return &ReservationResponse{
		ID: r.ID,
		Customer: CustomerResponse{
			ID:        r.Customer.ID,
			Name:      r.Customer.Name,
			Phone:     r.Customer.Phone,
			Email:     r.Customer.Email,
			Notes:     r.Customer.Notes,
			VIPStatus: r.Customer.VIPStatus,
		},
		PartySize:       r.PartySize,
		Date:            r.Date.Format(domain.DateFormat),
		StartTime:       r.StartTime.String(),
		EndTime:         r.EndTime.String(),
		TableIDs:        tableIDs,
		Status:          string(r.Status),
		SpecialRequests: r.SpecialRequests,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// FromDomainReservations конвертирует список domain моделей в DTO
func FromDomainReservations(reservations []*domain.Reservation) []ReservationResponse {
	result := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		result = append(result, *FromDomainReservation(r))
	}
	return result
}
