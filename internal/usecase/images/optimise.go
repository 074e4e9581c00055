package images

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/afrovibz/product-images-go/internal/logger"
	"github.com/afrovibz/product-images-go/internal/model"
	"github.com/afrovibz/product-images-go/internal/uuid"
)

// optimiseFile turns one validated temp artifact into the complete rendition
// set: four tiers, each encoded as JPEG and WebP. The set is all-or-nothing;
// any encode or upload failure removes the renditions produced so far and
// fails the file.
func (s *uploaderSrv) optimiseFile(ctx context.Context, productID string, vf *validatedFile) (*model.ProductImage, error) {
	start := time.Now()

	raw, err := os.ReadFile(vf.tempPath)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read temp artifact: %v", ErrOptimizationFailed, err)
	}
	sum := sha256.Sum256(raw)

	id := s.genUUID()
	renditions := make(model.Renditions, 0, model.RenditionCount)
	var optimisedBytes int64

	for _, tier := range Tiers {
		img := vf.decoded.Img
		width, height := vf.decoded.Width, vf.decoded.Height
		if tier.Width > 0 && tier.Width < vf.decoded.Width {
			img = s.codec.Resize(img, tier.Width)
			b := img.Bounds()
			width, height = b.Dx(), b.Dy()
		}

		for _, preset := range EncodePresets {
			data, err := s.codec.Encode(img, preset)
			if err != nil {
				s.removeRenditions(ctx, renditions)
				return nil, fmt.Errorf("%w: could not encode %s/%s: %v", ErrOptimizationFailed, tier.Name, preset.Format, err)
			}

			key := renditionKey(productID, id, tier.Name, preset.Format)
			opts := map[string]string{"Content-Type": renditionContentType(preset.Format)}
			if err := s.strg.SaveFile(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), opts); err != nil {
				s.removeRenditions(ctx, renditions)
				return nil, fmt.Errorf("%w: could not store %s/%s: %v", ErrOptimizationFailed, tier.Name, preset.Format, err)
			}

			renditions = append(renditions, model.Rendition{
				Tier:      tier.Name,
				Format:    preset.Format,
				ObjectKey: key,
				SizeBytes: int64(len(data)),
				Width:     width,
				Height:    height,
			})
			// the WebP set is what clients are steered towards, so it is the
			// consistent basis of the optimised size across the batch
			if preset.Format == model.FormatWebP {
				optimisedBytes += int64(len(data))
			}
		}
	}

	originalBytes := int64(len(raw))
	var ratio float64
	if originalBytes > 0 {
		ratio = float64(originalBytes-optimisedBytes) / float64(originalBytes)
	}

	now := time.Now().UTC()
	return &model.ProductImage{
		ID:               id,
		ProductID:        productID,
		OriginalFilename: vf.filename,
		Renditions:       renditions,
		Metadata: model.Metadata{
			OriginalSizeBytes:  originalBytes,
			OptimizedSizeBytes: optimisedBytes,
			Width:              vf.decoded.Width,
			Height:             vf.decoded.Height,
			Format:             vf.decoded.Format,
			Checksum:           hex.EncodeToString(sum[:]),
			UploadedAt:         now,
		},
		Stats: model.Stats{
			CompressionRatio: ratio,
			DurationMs:       time.Since(start).Milliseconds(),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *uploaderSrv) removeRenditions(ctx context.Context, renditions model.Renditions) {
	for _, r := range renditions {
		if err := s.strg.RemoveFile(ctx, s.bucket, r.ObjectKey); err != nil {
			logger.Warnf(ctx, "failed to remove partial rendition %q: %v", r.ObjectKey, err)
		}
	}
}

func renditionKey(productID string, id uuid.UUID, tier, format string) string {
	return path.Join("products", productID, id.String(), fmt.Sprintf("%s.%s", tier, renditionExtension(format)))
}
