package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/afrovibz/product-images-go/internal/port"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetProductImages(ctx context.Context, productID string) ([]byte, error) {
	val, err := c.client.Get(ctx, listingKey(productID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) GetEtagProductImages(ctx context.Context, productID string) (string, error) {
	val, err := c.client.Get(ctx, etagKey(productID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil // cache miss
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetProductImages(ctx context.Context, productID string, data []byte, validUntil time.Time) {
	log.Printf("creating listing cache entry for product %q, valid until %s...", productID, validUntil.Format(time.RFC1123))

	if err := c.client.Set(ctx, listingKey(productID), data, time.Until(validUntil)).Err(); err != nil {
		log.Printf("redis set failed for product %q: %v", productID, err)
	}
}

func (c *Cache) SetEtagProductImages(ctx context.Context, productID string, etag string, validUntil time.Time) {
	if err := c.client.Set(ctx, etagKey(productID), etag, time.Until(validUntil)).Err(); err != nil {
		log.Printf("redis set failed for product %q etag: %v", productID, err)
	}
}

func (c *Cache) DeleteProductImages(ctx context.Context, productID string) error {
	log.Printf("deleting listing cache entry for product %q...", productID)

	if err := c.client.Del(ctx, listingKey(productID)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func (c *Cache) DeleteEtagProductImages(ctx context.Context, productID string) error {
	if err := c.client.Del(ctx, etagKey(productID)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func listingKey(productID string) string {
	return "product_images:" + productID
}

func etagKey(productID string) string {
	return "product_images_etag:" + productID
}
