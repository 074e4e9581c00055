package cache

import (
	"context"
	"time"

	"github.com/afrovibz/product-images-go/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetProductImages(ctx context.Context, productID string) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) GetEtagProductImages(ctx context.Context, productID string) (string, error) {
	return "", nil
}

func (n *NoopCache) SetProductImages(ctx context.Context, productID string, data []byte, validUntil time.Time) {
}

func (n *NoopCache) SetEtagProductImages(ctx context.Context, productID string, etag string, validUntil time.Time) {
}

func (n *NoopCache) DeleteProductImages(ctx context.Context, productID string) error { return nil }

func (n *NoopCache) DeleteEtagProductImages(ctx context.Context, productID string) error {
	return nil
}
