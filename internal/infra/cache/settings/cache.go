package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	settingsRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/settings"
)

// noBuffer хранится в кеше, когда у барбершопа буфер не настроен
const noBuffer = "none"

// Cache read-through кеш буфера между записями
// Без redis-клиента работает как прямой доступ к репозиторию
type Cache struct {
	redis  *redis.Client
	repo   Repository
	ttl    time.Duration
	logger Logger
}

// NewCache создает кеш настроек; client может быть nil
func NewCache(client *redis.Client, repo Repository, ttl time.Duration, logger Logger) *Cache {
	return &Cache{
		redis:  client,
		repo:   repo,
		ttl:    ttl,
		logger: logger,
	}
}

// Key возвращает ключ буфера барбершопа в redis
func Key(barbershopID uuid.UUID) string {
	return fmt.Sprintf("barbershop:settings:%s:buffer", barbershopID)
}

// GetBufferMinutes возвращает буфер барбершопа, nil - буфер не настроен
// Ошибки redis не фатальны: значение читается из БД
func (c *Cache) GetBufferMinutes(ctx context.Context, barbershopID uuid.UUID) (*int, error) {
	if c.redis != nil {
		buffer, hit, err := c.get(ctx, barbershopID)
		if err != nil {
			c.logger.Warn("GetBufferMinutes: redis get failed for barbershop %s: %v", barbershopID, err)
		} else if hit {
			return buffer, nil
		}
	}

	settings, err := c.repo.GetByBarbershop(ctx, barbershopID)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrLoadSettings, err)
	}

	var buffer *int
	if settings != nil {
		buffer = settings.BufferMinutes
	}

	if c.redis != nil {
		if err := c.set(ctx, barbershopID, buffer); err != nil {
			c.logger.Warn("GetBufferMinutes: redis set failed for barbershop %s: %v", barbershopID, err)
		}
	}

	return buffer, nil
}

// Invalidate удаляет закешированный буфер после изменения настроек
func (c *Cache) Invalidate(ctx context.Context, barbershopID uuid.UUID) {
	if c.redis == nil {
		return
	}
	if err := c.redis.Del(ctx, Key(barbershopID)).Err(); err != nil {
		c.logger.Warn("Invalidate: redis del failed for barbershop %s: %v", barbershopID, err)
	}
}

func (c *Cache) get(ctx context.Context, barbershopID uuid.UUID) (*int, bool, error) {
	raw, err := c.redis.Get(ctx, Key(barbershopID)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if raw == noBuffer {
		return nil, true, nil
	}

	buffer, err := strconv.Atoi(raw)
	if err != nil {
		// Битое значение: считаем промахом, перезапишем из БД
		return nil, false, nil
	}

	return &buffer, true, nil
}

func (c *Cache) set(ctx context.Context, barbershopID uuid.UUID, buffer *int) error {
	value := noBuffer
	if buffer != nil {
		value = strconv.Itoa(*buffer)
	}
	return c.redis.Set(ctx, Key(barbershopID), value, c.ttl).Err()
}
