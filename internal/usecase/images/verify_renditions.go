package images

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/afrovibz/product-images-go/internal/logger"
	"github.com/afrovibz/product-images-go/internal/port"
	"github.com/afrovibz/product-images-go/internal/uuid"
)

type verifierSrv struct {
	repo   port.ImageRepository
	strg   port.Storage
	cache  port.Cache
	bucket string
}

// compile-time check: *verifierSrv must satisfy port.RenditionVerifier
var _ port.RenditionVerifier = (*verifierSrv)(nil)

// NewRenditionVerifier constructs a RenditionVerifier implementation.
func NewRenditionVerifier(repo port.ImageRepository, strg port.Storage, cache port.Cache, bucket string) port.RenditionVerifier {
	return &verifierSrv{repo: repo, strg: strg, cache: cache, bucket: bucket}
}

// VerifyRenditions checks that every rendition of a stored image still exists
// in object storage with the size it was written at. An image with an
// incomplete set is evicted entirely: a partial rendition set is a failure,
// not a degraded success.
func (s *verifierSrv) VerifyRenditions(ctx context.Context, id uuid.UUID) error {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// already deleted, nothing to verify
			return nil
		}
		return err
	}

	missing := !img.Renditions.Complete()
	if !missing {
		for _, r := range img.Renditions {
			info, err := s.strg.StatFile(ctx, s.bucket, r.ObjectKey)
			if errors.Is(err, ErrObjectNotFound) {
				missing = true
				break
			}
			if err != nil {
				return fmt.Errorf("could not stat rendition %q: %w", r.ObjectKey, err)
			}
			if info.SizeBytes != r.SizeBytes {
				// a truncated or overwritten object is as bad as a missing one
				missing = true
				break
			}
		}
	}

	if !missing {
		return s.repo.MarkVerified(ctx, img.ID)
	}

	logger.Warnf(ctx, "image #%s has an incomplete rendition set, evicting it", img.ID)
	for _, r := range img.Renditions {
		if err := s.strg.RemoveFile(ctx, s.bucket, r.ObjectKey); err != nil {
			logger.Warnf(ctx, "failed to remove rendition %q: %v", r.ObjectKey, err)
		}
	}
	if err := s.repo.Delete(ctx, img.ID); err != nil {
		return err
	}
	if err := s.cache.DeleteProductImages(ctx, img.ProductID); err != nil {
		logger.Warnf(ctx, "failed deleting listing cache for product %q: %v", img.ProductID, err)
	}
	if err := s.cache.DeleteEtagProductImages(ctx, img.ProductID); err != nil {
		logger.Warnf(ctx, "failed deleting listing etag cache for product %q: %v", img.ProductID, err)
	}
	return nil
}
