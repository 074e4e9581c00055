package port

import (
	"context"
)

// HTTPRenderer mediates between HTTP handlers and the image lister use case.
// It provides caching capabilities and returns both the JSON representation of
// the result as well as an ETag value derived from it.
type HTTPRenderer interface {
	// RenderListImages returns the cached JSON result and its ETag if available
	// or executes the underlying use case and caches the output otherwise.
	RenderListImages(ctx context.Context, lister ImageLister, productID string) ([]byte, string, error)
}
