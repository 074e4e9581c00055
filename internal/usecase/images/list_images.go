package images

import (
	"context"
	"fmt"

	"github.com/afrovibz/product-images-go/internal/model"
	"github.com/afrovibz/product-images-go/internal/port"
)

type listerSrv struct {
	repo   port.ImageRepository
	strg   port.Storage
	bucket string
}

// compile-time check: *listerSrv must satisfy port.ImageLister
var _ port.ImageLister = (*listerSrv)(nil)

// NewImageLister constructs an ImageLister implementation.
func NewImageLister(repo port.ImageRepository, strg port.Storage, bucket string) port.ImageLister {
	return &listerSrv{repo: repo, strg: strg, bucket: bucket}
}

// ListImages returns the product's image collection in display order, each
// rendition carrying a presigned download link. Object keys point into a
// private bucket, so the links are the only way callers can fetch the files.
func (s *listerSrv) ListImages(ctx context.Context, productID string) (*port.ListImagesOutput, error) {
	if productID == "" {
		return nil, ErrMissingProductID
	}

	imgs, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if imgs == nil {
		imgs = []model.ProductImage{}
	}

	for i := range imgs {
		for j := range imgs[i].Renditions {
			r := &imgs[i].Renditions[j]
			url, err := s.strg.GeneratePresignedDownloadURL(ctx, s.bucket, r.ObjectKey, DownloadURLTTL)
			if err != nil {
				return nil, fmt.Errorf("could not generate download link for %q: %w", r.ObjectKey, err)
			}
			r.URL = url
		}
	}

	return &port.ListImagesOutput{Success: true, Images: imgs}, nil
}
