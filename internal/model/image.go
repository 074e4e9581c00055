package model

import (
	"time"

	"github.com/afrovibz/product-images-go/internal/uuid"
)

// Tier names for the fixed rendition set. Every stored image carries all four
// tiers in both encodings; a partial set means the image failed ingestion.
const (
	TierOriginal  = "original"
	TierLarge     = "large"
	TierMedium    = "medium"
	TierThumbnail = "thumbnail"
)

const (
	FormatJPEG = "jpeg"
	FormatWebP = "webp"
)

// RenditionCount is the size of a complete rendition set (4 tiers × 2 encodings).
const RenditionCount = 8

// ProductImage is the durable output unit of the ingestion pipeline.
// It is never mutated after creation; reordering only changes Position.
type ProductImage struct {
	ID               uuid.UUID  `json:"id"`
	ProductID        string     `json:"product_id"`
	OriginalFilename string     `json:"original_filename"`
	Renditions       Renditions `json:"renditions"`
	Metadata         Metadata   `json:"metadata"`
	Stats            Stats      `json:"stats"`
	Position         int        `json:"position"`
	VerifiedAt       *time.Time `json:"verified_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
