package domain

// Default configuration values
const (
	ConfigID                   = "default"
	DefaultRestaurantName      = "ReserveFlow Restaurant"
	DefaultTimeSlotDuration    = 30
	DefaultReservationDuration = 120
	DefaultAdvanceBookingDays  = 90 // 0 = unlimited
)

// Business validation constants
const (
	MinTimeSlotDuration       = 5
	MaxTimeSlotDuration       = 240
	MinReservationDuration    = 15
	MaxReservationDuration    = 720 // 12 hours
	MinAdvanceBookingDays     = 0
	MaxAdvanceBookingDays     = 365 // 1 year
	MaxPartySize              = 100
	MaxTablesPerReservation   = 10
	MaxNameLength             = 200
	MaxSpecialRequestsLength  = 500
	MaxDashboardUpcomingCount = 5
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TableStatus состояние стола в конкретный момент времени
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableReserved  TableStatus = "reserved"
	TableOccupied  TableStatus = "occupied"
)
