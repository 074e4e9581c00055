package port

import (
	"context"
	"time"
)

// Cache provides caching capabilities for product image listings.
type Cache interface {
	GetProductImages(ctx context.Context, productID string) ([]byte, error)
	GetEtagProductImages(ctx context.Context, productID string) (string, error)
	SetProductImages(ctx context.Context, productID string, data []byte, validUntil time.Time)
	SetEtagProductImages(ctx context.Context, productID string, etag string, validUntil time.Time)
	DeleteProductImages(ctx context.Context, productID string) error
	DeleteEtagProductImages(ctx context.Context, productID string) error
}
