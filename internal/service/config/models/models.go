package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модели

// ReplaceConfigRequest запрос на полную замену конфигурации ресторана
// Ключи WorkingHours - названия дней недели: monday..sunday
type ReplaceConfigRequest struct {
	Name                string                  `json:"name"`
	WorkingHours        map[string]WorkingHours `json:"workingHours"`
	TimeSlotDuration    int                     `json:"timeSlotDuration"`             // минуты
	ReservationDuration int                     `json:"reservationDuration"`          // минуты
	AdvanceBookingDays  *int                    `json:"advanceBookingDays,omitempty"` // nil = значение по умолчанию, 0 = без ограничений
}

// WorkingHours расписание на один день
type WorkingHours struct {
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime,omitempty"`  // HH:MM
	CloseTime string `json:"closeTime,omitempty"` // HH:MM
}

// Response модели

// ConfigResponse ответ с конфигурацией ресторана
type ConfigResponse struct {
	Name                string                  `json:"name"`
	WorkingHours        map[string]WorkingHours `json:"workingHours"`
	TimeSlotDuration    int                     `json:"timeSlotDuration"`
	ReservationDuration int                     `json:"reservationDuration"`
	AdvanceBookingDays  int                     `json:"advanceBookingDays"`
	UpdatedAt           time.Time               `json:"updatedAt"`
}

// Методы конвертации

// WeekdayKey возвращает ключ дня недели в JSON (monday..sunday)
func WeekdayKey(day time.Weekday) string {
	switch day {
	case time.Sunday:
		return "sunday"
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return ""
	}
}

// ParseWeekdayKey разбирает ключ дня недели
func ParseWeekdayKey(key string) (time.Weekday, bool) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if WeekdayKey(day) == key {
			return day, true
		}
	}
	return 0, false
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.RestaurantConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	hours := make(map[string]WorkingHours, len(c.WorkingHours))
	for day, wh := range c.WorkingHours {
		hours[WeekdayKey(day)] = WorkingHours{
			IsOpen:    wh.IsOpen,
			OpenTime:  wh.OpenTime.String(),
			CloseTime: wh.CloseTime.String(),
		}
	}

	return &ConfigResponse{
		Name:                c.Name,
		WorkingHours:        hours,
		TimeSlotDuration:    c.TimeSlotDuration,
		ReservationDuration: c.ReservationDuration,
		AdvanceBookingDays:  c.AdvanceBookingDays,
		UpdatedAt:           c.UpdatedAt,
	}
}
