package establishmentservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/t1mofey/SLN-BookingService/internal/infra/cache"
)

// CachedClient read-through кеш поверх клиента EstablishmentService
// Профили заведений и услуг меняются редко, а запрашиваются на каждый
// расчет слотов; короткий TTL снимает основную нагрузку с внешнего сервиса.
// Ошибки кеша не фатальны: при недоступности redis запрос идет напрямую.
type CachedClient struct {
	client *Client
	cache  *cache.Cache
	log    Logger
}

// NewCachedClient оборачивает клиент кешом
func NewCachedClient(client *Client, c *cache.Cache, log Logger) *CachedClient {
	return &CachedClient{client: client, cache: c, log: log}
}

// GetEstablishment получает заведение, сначала проверяя кеш
func (c *CachedClient) GetEstablishment(ctx context.Context, establishmentID int64) (*Establishment, error) {
	key := fmt.Sprintf("establishment:%d", establishmentID)

	var cached Establishment
	err := c.cache.Get(ctx, key, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		c.log.Warn("CachedClient: cache read failed for %s: %v", key, err)
	}

	establishment, err := c.client.GetEstablishment(ctx, establishmentID)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, key, establishment); err != nil {
		c.log.Warn("CachedClient: cache write failed for %s: %v", key, err)
	}

	return establishment, nil
}

// GetService получает услугу, сначала проверяя кеш
func (c *CachedClient) GetService(ctx context.Context, establishmentID, serviceID int64) (*Service, error) {
	key := fmt.Sprintf("establishment:%d:service:%d", establishmentID, serviceID)

	var cached Service
	err := c.cache.Get(ctx, key, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		c.log.Warn("CachedClient: cache read failed for %s: %v", key, err)
	}

	service, err := c.client.GetService(ctx, establishmentID, serviceID)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, key, service); err != nil {
		c.log.Warn("CachedClient: cache write failed for %s: %v", key, err)
	}

	return service, nil
}
