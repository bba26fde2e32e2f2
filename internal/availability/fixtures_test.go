package availability

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// 2025-06-05 четверг
var (
	thursday = time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	friday   = thursday.AddDate(0, 0, 1)
)

func newConfig() *domain.RestaurantConfig {
	return domain.DefaultRestaurantConfig()
}

func newTable(id string, min, max int) *domain.Table {
	return &domain.Table{
		ID:       id,
		Name:     id,
		Area:     domain.AreaInside,
		Capacity: domain.Capacity{Min: min, Max: max},
		IsActive: true,
	}
}

func newReservation(id string, date time.Time, start, end types.TimeString, status domain.ReservationStatus, tableIDs ...string) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		Customer:  domain.Customer{ID: "c-" + id, Name: "Guest " + id, Phone: "+100000000"},
		PartySize: 2,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		TableIDs:  tableIDs,
		Status:    status,
	}
}

func tableIDs(tables []*domain.Table) []string {
	ids := make([]string, 0, len(tables))
	for _, t := range tables {
		ids = append(ids, t.ID)
	}
	return ids
}
