package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/storefront-api/internal/application/checkout"
	"github.com/jhoicas/storefront-api/internal/application/stock"
	"github.com/jhoicas/storefront-api/pkg/config"
)

// Ensure StockCache implements the cache ports.
var _ stock.Cache = (*StockCache)(nil)
var _ checkout.Cache = (*StockCache)(nil)

// StockCache caché cache-aside de los agregados de stock por producto.
// Clave: stock:totals:<productID>, valor JSON, con TTL como respaldo
// por si una invalidación se pierde.
type StockCache struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewClient construye el cliente Redis y verifica conectividad.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// NewStockCache construye el caché sobre un cliente ya conectado.
func NewStockCache(client *goredis.Client, ttl time.Duration) *StockCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &StockCache{client: client, ttl: ttl}
}

func key(productID string) string {
	return "stock:totals:" + productID
}

// GetTotals devuelve los totales cacheados; miss (redis.Nil) no es error.
func (c *StockCache) GetTotals(ctx context.Context, productID string) (*stock.Totals, bool, error) {
	raw, err := c.client.Get(ctx, key(productID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	var totals stock.Totals
	if err := json.Unmarshal(raw, &totals); err != nil {
		// entrada corrupta: se descarta y se trata como miss
		_ = c.client.Del(ctx, key(productID)).Err()
		return nil, false, nil
	}
	return &totals, true, nil
}

// SetTotals guarda los totales con TTL.
func (c *StockCache) SetTotals(ctx context.Context, productID string, totals stock.Totals) error {
	raw, err := json.Marshal(totals)
	if err != nil {
		return fmt.Errorf("marshal totals: %w", err)
	}
	if err := c.client.Set(ctx, key(productID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Invalidate borra la entrada del producto tras una mutación del libro de stock.
func (c *StockCache) Invalidate(ctx context.Context, productID string) error {
	if err := c.client.Del(ctx, key(productID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
