package images

import (
	"time"

	"github.com/afrovibz/product-images-go/internal/model"
	"github.com/afrovibz/product-images-go/internal/port"
)

const (
	MaxFileSize        = 10 * 1024 * 1024  // 10 MiB per file
	MaxBatchSize       = 100 * 1024 * 1024 // 100 MiB across the accepted files of one batch
	MaxFilesPerRequest = 8

	RateLimitPerWindow = 20
	RateLimitWindow    = time.Minute

	// presigned download links must outlive any cached listing that carries them
	DownloadURLTTL = time.Hour

	// past this pixel width or height a non-fatal resize suggestion is emitted
	largeDimensionPx = 4000
)

var AllowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var AllowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

func IsMimeTypeAllowed(mimeType string) bool {
	return AllowedMimeTypes[mimeType]
}

func IsExtensionAllowed(ext string) bool {
	return AllowedExtensions[ext]
}

// Tier is one target size class of the rendition set. Width 0 keeps the
// source dimensions.
type Tier struct {
	Name  string
	Width int
}

var Tiers = []Tier{
	{model.TierOriginal, 0},
	{model.TierLarge, 1200},
	{model.TierMedium, 600},
	{model.TierThumbnail, 150},
}

// EncodePresets are the two encodings every tier is produced in: a broadly
// compatible raster format and a modern higher-compression one.
var EncodePresets = []port.EncodePreset{
	{Format: model.FormatJPEG, Quality: 85},
	{Format: model.FormatWebP, Quality: 80},
}

func renditionExtension(format string) string {
	if format == model.FormatWebP {
		return "webp"
	}
	return "jpg"
}

func renditionContentType(format string) string {
	if format == model.FormatWebP {
		return "image/webp"
	}
	return "image/jpeg"
}
