package mock

import (
	"context"
	"time"
)

// Cache implements cache behaviour for tests.
type Cache struct {
	// stored values
	ImagesOut []byte

	// etag values
	EtagImages string

	// errors
	GetImagesErr     error
	GetEtagImagesErr error
	DelImagesErr     error
	DelEtagImagesErr error

	// call flags
	GetImagesCalled     bool
	GetEtagImagesCalled bool
	SetImagesCalled     bool
	SetEtagImagesCalled bool
	DelImagesCalled     bool
	DelEtagImagesCalled bool
}

func (c *Cache) GetProductImages(ctx context.Context, productID string) ([]byte, error) {
	c.GetImagesCalled = true
	if c.GetImagesErr != nil {
		return nil, c.GetImagesErr
	}
	return c.ImagesOut, nil
}

func (c *Cache) GetEtagProductImages(ctx context.Context, productID string) (string, error) {
	c.GetEtagImagesCalled = true
	if c.GetEtagImagesErr != nil {
		return "", c.GetEtagImagesErr
	}
	return c.EtagImages, nil
}

func (c *Cache) SetProductImages(ctx context.Context, productID string, data []byte, validUntil time.Time) {
	c.SetImagesCalled = true
	c.ImagesOut = data
}

func (c *Cache) SetEtagProductImages(ctx context.Context, productID string, etag string, validUntil time.Time) {
	c.SetEtagImagesCalled = true
	c.EtagImages = etag
}

func (c *Cache) DeleteProductImages(ctx context.Context, productID string) error {
	c.DelImagesCalled = true
	return c.DelImagesErr
}

func (c *Cache) DeleteEtagProductImages(ctx context.Context, productID string) error {
	c.DelEtagImagesCalled = true
	return c.DelEtagImagesErr
}
