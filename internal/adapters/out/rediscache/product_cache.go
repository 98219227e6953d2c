// Package rediscache provides a read-through cache over the product
// repository. Catalog reads dominate storefront traffic while the catalog
// itself changes rarely, so listings and product detail are served from redis
// and fall back to postgres on a miss. Redis failures never fail a request;
// the cache degrades to pass-through.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/core/domain/model/product"
	"fishmarket/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	productKeyPrefix  = "product:"
	availableListKey  = "products:available"
	categoryKeyPrefix = "products:category:"

	cacheTTL = 5 * time.Minute
)

// ProductCache decorates a ports.ProductRepository with redis caching.
// Writes go straight through and invalidate the affected keys.
type ProductCache struct {
	inner  ports.ProductRepository
	client redis.UniversalClient
	logger *slog.Logger
}

// NewProductCache creates the decorator.
func NewProductCache(
	inner ports.ProductRepository,
	client redis.UniversalClient,
	logger *slog.Logger,
) *ProductCache {
	return &ProductCache{
		inner:  inner,
		client: client,
		logger: logger.With("component", "product_cache"),
	}
}

// productRecord is the JSON shape cached in redis.
type productRecord struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Category      string    `json:"category"`
	StockQuantity float64   `json:"stock_quantity"`
	Unit          string    `json:"unit"`
	IsAvailable   bool      `json:"is_available"`
	ImageURL      string    `json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func recordFromAggregate(p *product.Product) productRecord {
	return productRecord{
		ID:            p.ID().String(),
		Name:          p.Name(),
		Description:   p.Description(),
		Price:         p.Price(),
		Category:      p.Category(),
		StockQuantity: p.StockQuantity(),
		Unit:          string(p.Unit()),
		IsAvailable:   p.IsAvailable(),
		ImageURL:      p.ImageURL(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func (rec productRecord) toAggregate() (*product.Product, error) {
	id, err := kernel.UUIDFromString(rec.ID)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		rec.Name,
		rec.Description,
		rec.Price,
		rec.Category,
		rec.StockQuantity,
		product.Unit(rec.Unit),
		rec.IsAvailable,
		rec.ImageURL,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
}

// Add passes through and invalidates the listing keys.
func (c *ProductCache) Add(ctx context.Context, aggregate *product.Product) error {
	if err := c.inner.Add(ctx, aggregate); err != nil {
		return err
	}

	c.invalidate(ctx, aggregate)
	return nil
}

// Update passes through and invalidates the product and listing keys.
func (c *ProductCache) Update(ctx context.Context, aggregate *product.Product) error {
	if err := c.inner.Update(ctx, aggregate); err != nil {
		return err
	}

	c.invalidate(ctx, aggregate)
	return nil
}

// Get serves from the cache when possible.
func (c *ProductCache) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	key := productKeyPrefix + id.String()

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var rec productRecord
		if err = json.Unmarshal(payload, &rec); err == nil {
			return rec.toAggregate()
		}
		c.logger.Warn("corrupt cache entry", "key", key, "error", err)
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("cache read failed", "key", key, "error", err)
	}

	aggregate, err := c.inner.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, recordFromAggregate(aggregate))
	return aggregate, nil
}

// GetAllAvailable serves the storefront listing from the cache when possible.
func (c *ProductCache) GetAllAvailable(ctx context.Context) ([]*product.Product, error) {
	return c.cachedList(ctx, availableListKey, func(ctx context.Context) ([]*product.Product, error) {
		return c.inner.GetAllAvailable(ctx)
	})
}

// GetAllByCategory serves a category listing from the cache when possible.
func (c *ProductCache) GetAllByCategory(ctx context.Context, category string) ([]*product.Product, error) {
	return c.cachedList(ctx, categoryKeyPrefix+category, func(ctx context.Context) ([]*product.Product, error) {
		return c.inner.GetAllByCategory(ctx, category)
	})
}

func (c *ProductCache) cachedList(
	ctx context.Context,
	key string,
	load func(ctx context.Context) ([]*product.Product, error),
) ([]*product.Product, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var recs []productRecord
		if err = json.Unmarshal(payload, &recs); err == nil {
			aggregates := make([]*product.Product, 0, len(recs))
			for _, rec := range recs {
				aggregate, recErr := rec.toAggregate()
				if recErr != nil {
					return nil, recErr
				}
				aggregates = append(aggregates, aggregate)
			}
			return aggregates, nil
		}
		c.logger.Warn("corrupt cache entry", "key", key, "error", err)
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("cache read failed", "key", key, "error", err)
	}

	aggregates, err := load(ctx)
	if err != nil {
		return nil, err
	}

	recs := make([]productRecord, 0, len(aggregates))
	for _, aggregate := range aggregates {
		recs = append(recs, recordFromAggregate(aggregate))
	}
	c.store(ctx, key, recs)

	return aggregates, nil
}

func (c *ProductCache) store(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache marshal failed", "key", key, "error", err)
		return
	}
	if err = c.client.Set(ctx, key, payload, cacheTTL).Err(); err != nil {
		c.logger.Warn("cache write failed", "key", key, "error", err)
	}
}

func (c *ProductCache) invalidate(ctx context.Context, aggregate *product.Product) {
	keys := []string{
		productKeyPrefix + aggregate.ID().String(),
		availableListKey,
		categoryKeyPrefix + aggregate.Category(),
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("cache invalidation failed", "keys", keys, "error", err)
	}
}
