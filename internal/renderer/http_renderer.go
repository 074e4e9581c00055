package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"time"

	"github.com/afrovibz/product-images-go/internal/port"
)

// listingTTL bounds how long a rendered product listing stays cached.
const listingTTL = 5 * time.Minute

type httpRenderer struct {
	cache port.Cache
}

// compile-time check: *httpRenderer must satisfy port.HTTPRenderer
var _ port.HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new HTTPRenderer implementation.
func NewHTTPRenderer(cache port.Cache) port.HTTPRenderer {
	return &httpRenderer{cache: cache}
}

// RenderListImages fetches the product listing either from cache or from the
// wrapped use case. It returns the JSON encoded output and a quoted ETag
// string.
func (r *httpRenderer) RenderListImages(ctx context.Context, lister port.ImageLister, productID string) ([]byte, string, error) {
	raw, err := r.cache.GetProductImages(ctx, productID)
	etag, errEtag := r.cache.GetEtagProductImages(ctx, productID)
	if err == nil && errEtag == nil && raw != nil && etag != "" {
		return raw, etag, nil
	}

	out, err := lister.ListImages(ctx, productID)
	if err != nil {
		return nil, "", err
	}

	raw, err = json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag = fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
	validUntil := time.Now().Add(listingTTL)
	r.cache.SetProductImages(ctx, productID, raw, validUntil)
	r.cache.SetEtagProductImages(ctx, productID, etag, validUntil)

	return raw, etag, nil
}
