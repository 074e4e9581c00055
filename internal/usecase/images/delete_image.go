package images

import (
	"context"
	"database/sql"
	"errors"

	"github.com/afrovibz/product-images-go/internal/logger"
	"github.com/afrovibz/product-images-go/internal/port"
)

type deleterSrv struct {
	repo   port.ImageRepository
	cache  port.Cache
	strg   port.Storage
	bucket string
}

// compile-time check: *deleterSrv must satisfy port.ImageDeleter
var _ port.ImageDeleter = (*deleterSrv)(nil)

// NewImageDeleter constructs an ImageDeleter implementation.
func NewImageDeleter(repo port.ImageRepository, cache port.Cache, strg port.Storage, bucket string) port.ImageDeleter {
	return &deleterSrv{repo: repo, cache: cache, strg: strg, bucket: bucket}
}

// DeleteImage removes one image from a product's collection along with its
// backing rendition files. An image that does not belong to the given product
// is treated as not found.
func (s *deleterSrv) DeleteImage(ctx context.Context, in port.DeleteImageInput) error {
	if in.ProductID == "" {
		return ErrMissingProductID
	}

	img, err := s.repo.GetByID(ctx, in.ImageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrImageNotFound
		}
		return err
	}
	if img.ProductID != in.ProductID {
		return ErrImageNotFound
	}

	for _, r := range img.Renditions {
		if err := s.strg.RemoveFile(ctx, s.bucket, r.ObjectKey); err != nil {
			logger.Warnf(ctx, "failed to remove rendition %q: %v", r.ObjectKey, err)
		}
	}

	if err := s.repo.Delete(ctx, img.ID); err != nil {
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
