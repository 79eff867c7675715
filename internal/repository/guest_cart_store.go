package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aquatech-store/internal/cache"
	"github.com/aquatech-store/internal/logger"
	"github.com/aquatech-store/internal/models"

	"gorm.io/gorm"
)

// GuestCartStore is durable storage for an anonymous session's cart.
// Load never fails from the caller's view: corrupt or missing payloads
// read as an empty cart. Save is best-effort — a failed write leaves the
// in-memory cart correct but possibly not surviving the session.
type GuestCartStore interface {
	Load(ctx context.Context, token string) []GuestCartLine
	Save(ctx context.Context, token string, lines []GuestCartLine)
	Clear(ctx context.Context, token string) error
}

const guestCartKeyPrefix = "guest_cart"

// RedisGuestCartStore stores the guest cart as one JSON value per token.
type RedisGuestCartStore struct {
	ttl time.Duration
}

// NewRedisGuestCartStore creates a Redis-backed guest cart store.
func NewRedisGuestCartStore(ttl time.Duration) *RedisGuestCartStore {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &RedisGuestCartStore{ttl: ttl}
}

// Load reads the persisted lines for a token.
func (s *RedisGuestCartStore) Load(ctx context.Context, token string) []GuestCartLine {
	if token == "" {
		return nil
	}
	var lines []GuestCartLine
	hit, err := cache.GetJSON(ctx, guestCartKey(token), &lines)
	if err != nil {
		// Corrupt or unreachable storage reads as empty.
		logger.Warnw("guest_cart_load_failed", "error", err)
		return nil
	}
	if !hit {
		return nil
	}
	return lines
}

// Save overwrites the persisted lines for a token.
func (s *RedisGuestCartStore) Save(ctx context.Context, token string, lines []GuestCartLine) {
	if token == "" {
		return
	}
	if err := cache.SetJSON(ctx, guestCartKey(token), lines, s.ttl); err != nil {
		logger.Warnw("guest_cart_save_failed", "error", err)
	}
}

// Clear removes the persisted state for a token.
func (s *RedisGuestCartStore) Clear(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return cache.Del(ctx, guestCartKey(token))
}

func guestCartKey(token string) string {
	return fmt.Sprintf("%s:%s", guestCartKeyPrefix, token)
}

// GormGuestCartStore stores guest carts in the database. Used when Redis
// is disabled.
type GormGuestCartStore struct {
	db *gorm.DB
}

// NewGormGuestCartStore creates a database-backed guest cart store.
func NewGormGuestCartStore(db *gorm.DB) *GormGuestCartStore {
	return &GormGuestCartStore{db: db}
}

// Load reads the persisted lines for a token.
func (s *GormGuestCartStore) Load(ctx context.Context, token string) []GuestCartLine {
	if token == "" {
		return nil
	}
	var row models.GuestCart
	err := s.db.WithContext(ctx).Where("token = ?", token).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		logger.Warnw("guest_cart_load_failed", "error", err)
		return nil
	}
	var lines []GuestCartLine
	if err := json.Unmarshal([]byte(row.Payload), &lines); err != nil {
		// Corrupt payload reads as empty.
		logger.Warnw("guest_cart_payload_corrupt", "token", token, "error", err)
		return nil
	}
	return lines
}

// Save overwrites the persisted lines for a token.
func (s *GormGuestCartStore) Save(ctx context.Context, token string, lines []GuestCartLine) {
	if token == "" {
		return
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		logger.Warnw("guest_cart_save_failed", "error", err)
		return
	}
	row := models.GuestCart{Token: token, Payload: string(payload), UpdatedAt: time.Now()}
	var existing models.GuestCart
	err = s.db.WithContext(ctx).Where("token = ?", token).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = s.db.WithContext(ctx).Create(&row).Error
	} else if err == nil {
		err = s.db.WithContext(ctx).Model(&existing).Updates(map[string]interface{}{
			"payload":    row.Payload,
			"updated_at": row.UpdatedAt,
		}).Error
	}
	if err != nil {
		logger.Warnw("guest_cart_save_failed", "error", err)
	}
}

// Clear removes the persisted state for a token.
func (s *GormGuestCartStore) Clear(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.db.WithContext(ctx).Where("token = ?", token).Delete(&models.GuestCart{}).Error
}
