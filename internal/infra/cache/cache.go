package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrCacheMiss возвращается, когда ключ не найден в кеше
	ErrCacheMiss = errors.New("cache: key not found")
)

// Cache JSON-кеш поверх redis
// Используется для короткоживущих снимков профилей заведений и услуг,
// чтобы не ходить в EstablishmentService на каждый запрос слотов.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает кеш с указанным TTL
func New(addr, password string, db int, ttl time.Duration) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &Cache{client: client, ttl: ttl}
}

// Ping проверяет соединение с redis
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Get читает значение по ключу и декодирует его в dest
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("cache: get %q: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("cache: decode %q: %w", key, err)
	}

	return nil
}

// Set кодирует значение в JSON и сохраняет с TTL кеша
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: encode %q: %w", key, err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %q: %w", key, err)
	}

	return nil
}

// Close закрывает соединение с redis
func (c *Cache) Close() error {
	return c.client.Close()
}
