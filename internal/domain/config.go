package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// WorkingHours расписание работы ресторана на один день недели
type WorkingHours struct {
	IsOpen    bool
	OpenTime  types.TimeString
	CloseTime types.TimeString
}

// RestaurantConfig represents the restaurant-wide booking configuration
// Единственная запись, заменяется целиком
type RestaurantConfig struct {
	ID                  string
	Name                string
	WorkingHours        map[time.Weekday]WorkingHours // ключи 0=Sunday..6=Saturday
	TimeSlotDuration    int                           // шаг генерации слотов, минуты
	ReservationDuration int                           // длительность любого бронирования, минуты
	AdvanceBookingDays  int                           // 0 = unlimited
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance bookings can be made
func (c *RestaurantConfig) HasAdvanceBookingLimit() bool {
	return c.AdvanceBookingDays > 0
}

// DefaultRestaurantConfig конфигурация, которой заполняется пустая база
func DefaultRestaurantConfig() *RestaurantConfig {
	weekday := WorkingHours{IsOpen: true, OpenTime: "09:00", CloseTime: "22:00"}
	weekend := WorkingHours{IsOpen: true, OpenTime: "09:00", CloseTime: "23:00"}

	return &RestaurantConfig{
		ID:   ConfigID,
		Name: DefaultRestaurantName,
		WorkingHours: map[time.Weekday]WorkingHours{
			time.Sunday:    {IsOpen: true, OpenTime: "10:00", CloseTime: "21:00"},
			time.Monday:    weekday,
			time.Tuesday:   weekday,
			time.Wednesday: weekday,
			time.Thursday:  weekday,
			time.Friday:    weekend,
			time.Saturday:  weekend,
		},
		TimeSlotDuration:    DefaultTimeSlotDuration,
		ReservationDuration: DefaultReservationDuration,
		AdvanceBookingDays:  DefaultAdvanceBookingDays,
	}
}
