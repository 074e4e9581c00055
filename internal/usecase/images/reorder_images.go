package images

import (
	"context"
	"fmt"

	"github.com/afrovibz/product-images-go/internal/logger"
	"github.com/afrovibz/product-images-go/internal/port"
)

type reordererSrv struct {
	repo  port.ImageRepository
	cache port.Cache
}

// compile-time check: *reordererSrv must satisfy port.ImageReorderer
var _ port.ImageReorderer = (*reordererSrv)(nil)

// NewImageReorderer constructs an ImageReorderer implementation.
func NewImageReorderer(repo port.ImageRepository, cache port.Cache) port.ImageReorderer {
	return &reordererSrv{repo, cache}
}

// ReorderImages replaces the product's display-order sequence. The provided
// list must be exactly a permutation of the persisted identifier set.
func (s *reordererSrv) ReorderImages(ctx context.Context, in port.ReorderImagesInput) error {
	if in.ProductID == "" {
		return ErrMissingProductID
	}
	if len(in.ImageOrder) == 0 {
		return fmt.Errorf("%w: empty order list", ErrInvalidOrderList)
	}

	seen := make(map[string]struct{}, len(in.ImageOrder))
	for _, id := range in.ImageOrder {
		if _, dup := seen[id.String()]; dup {
			return fmt.Errorf("%w: duplicate identifier %s", ErrInvalidOrderList, id)
		}
		seen[id.String()] = struct{}{}
	}

	if err := s.repo.Reorder(ctx, in.ProductID, in.ImageOrder); err != nil {
		return err
	}

	if err := s.cache.DeleteProductImages(ctx, in.ProductID); err != nil {
		logger.Warnf(ctx, "failed deleting listing cache for product %q: %v", in.ProductID, err)
	}
	if err := s.cache.DeleteEtagProductImages(ctx, in.ProductID); err != nil {
		logger.Warnf(ctx, "failed deleting listing etag cache for product %q: %v", in.ProductID, err)
	}
	return nil
}
