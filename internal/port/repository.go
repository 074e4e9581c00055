package port

import (
	"context"
	"time"

	"github.com/afrovibz/product-images-go/internal/model"
	"github.com/afrovibz/product-images-go/internal/uuid"
)

// ImageRepository defines persistence operations for the per-product image collection.
type ImageRepository interface {
	Create(ctx context.Context, img *model.ProductImage) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.ProductImage, error)
	ListByProduct(ctx context.Context, productID string) ([]model.ProductImage, error)
	MaxPosition(ctx context.Context, productID string) (int, error)
	// Reorder replaces the display order of the product's collection. The given
	// ids must be exactly a permutation of the persisted set.
	Reorder(ctx context.Context, productID string, ids []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	MarkVerified(ctx context.Context, id uuid.UUID) error
	ListUnverifiedBefore(ctx context.Context, before time.Time) ([]uuid.UUID, error)
}
