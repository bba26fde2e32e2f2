package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

const keyPrefix = "reservations:config:"

// snapshot формат конфигурации в кэше
type snapshot struct {
	ID                  string                `json:"id"`
	Name                string                `json:"name"`
	WorkingHours        map[int]hoursSnapshot `json:"workingHours"`
	TimeSlotDuration    int                   `json:"timeSlotDuration"`
	ReservationDuration int                   `json:"reservationDuration"`
	AdvanceBookingDays  int                   `json:"advanceBookingDays"`
	CreatedAt           time.Time             `json:"createdAt"`
	UpdatedAt           time.Time             `json:"updatedAt"`
}

type hoursSnapshot struct {
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`
}

// Cache кэш конфигурации ресторана в Redis
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache создает кэш конфигурации
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get читает снимок конфигурации
// Возвращает ErrCacheMiss, если ключа нет
func (c *Cache) Get(ctx context.Context, id string) (*domain.RestaurantConfig, error) {
	data, err := c.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get: %v", ErrCache, err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: Get - decode snapshot: %v", ErrCache, err)
	}

	return fromSnapshot(snap), nil
}

// Set сохраняет снимок конфигурации с TTL
func (c *Cache) Set(ctx context.Context, cfg *domain.RestaurantConfig) error {
	data, err := json.Marshal(toSnapshot(cfg))
	if err != nil {
		return fmt.Errorf("%w: Set - encode snapshot: %v", ErrCache, err)
	}

	if err := c.client.Set(ctx, keyPrefix+cfg.ID, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set: %v", ErrCache, err)
	}
	return nil
}

// Invalidate удаляет снимок конфигурации
func (c *Cache) Invalidate(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate: %v", ErrCache, err)
	}
	return nil
}

func toSnapshot(cfg *domain.RestaurantConfig) snapshot {
	hours := make(map[int]hoursSnapshot, len(cfg.WorkingHours))
	for day, wh := range cfg.WorkingHours {
		hours[int(day)] = hoursSnapshot{
			IsOpen:    wh.IsOpen,
			OpenTime:  wh.OpenTime.String(),
			CloseTime: wh.CloseTime.String(),
		}
	}

	return snapshot{
		ID:                  cfg.ID,
		Name:                cfg.Name,
		WorkingHours:        hours,
		TimeSlotDuration:    cfg.TimeSlotDuration,
		ReservationDuration: cfg.ReservationDuration,
		AdvanceBookingDays:  cfg.AdvanceBookingDays,
		CreatedAt:           cfg.CreatedAt,
		UpdatedAt:           cfg.UpdatedAt,
	}
}

func fromSnapshot(snap snapshot) *domain.RestaurantConfig {
	hours := make(map[time.Weekday]domain.WorkingHours, len(snap.WorkingHours))
	for day, wh := range snap.WorkingHours {
		hours[time.Weekday(day)] = domain.WorkingHours{
			IsOpen:    wh.IsOpen,
			OpenTime:  types.TimeString(wh.OpenTime),
			CloseTime: types.TimeString(wh.CloseTime),
		}
	}

	return &domain.RestaurantConfig{
		ID:                  snap.ID,
		Name:                snap.Name,
		WorkingHours:        hours,
		TimeSlotDuration:    snap.TimeSlotDuration,
		ReservationDuration: snap.ReservationDuration,
		AdvanceBookingDays:  snap.AdvanceBookingDays,
		CreatedAt:           snap.CreatedAt,
		UpdatedAt:           snap.UpdatedAt,
	}
}
