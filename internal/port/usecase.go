package port

import (
	"context"
	"io"

	"github.com/afrovibz/product-images-go/internal/model"
	"github.com/afrovibz/product-images-go/internal/uuid"
)

type UUIDGen func() uuid.UUID

// UploadFile is one raw file payload from a multipart upload request.
type UploadFile struct {
	Filename    string
	ContentType string
	SizeBytes   int64
	Reader      io.Reader
}

// UploadImagesInput carries everything the Uploader needs to admit and
// process one upload batch.
type UploadImagesInput struct {
	ProductID   string
	ClientID    string
	ContentType string
	Files       []UploadFile
}

// UploadImagesOutput is the terminal response of an upload batch. Success is
// true iff at least one file succeeded; callers must inspect Errors even on
// success, since partial success is a valid terminal state.
type UploadImagesOutput struct {
	Success     bool                 `json:"success"`
	Message     string               `json:"message"`
	Images      []model.ProductImage `json:"images,omitempty"`
	Errors      []string             `json:"errors,omitempty"`
	Suggestions []string             `json:"suggestions,omitempty"`
}

// ImageUploader runs the full ingestion pipeline for one upload batch.
type ImageUploader interface {
	UploadImages(ctx context.Context, in UploadImagesInput) (*UploadImagesOutput, error)
}

// ListImagesOutput describes the result of the ListImages use case.
type ListImagesOutput struct {
	Success bool                 `json:"success"`
	Images  []model.ProductImage `json:"images"`
}

// ImageLister returns the ordered image collection of a product.
type ImageLister interface {
	ListImages(ctx context.Context, productID string) (*ListImagesOutput, error)
}

// ReorderImagesInput carries the full new ordering of a product's collection.
type ReorderImagesInput struct {
	ProductID  string
	ImageOrder []uuid.UUID
}

// ImageReorderer replaces a product's display-order sequence.
type ImageReorderer interface {
	ReorderImages(ctx context.Context, in ReorderImagesInput) error
}

// DeleteImageInput identifies one image inside a product's collection.
type DeleteImageInput struct {
	ProductID string
	ImageID   uuid.UUID
}

// ImageDeleter removes one image and its backing rendition files.
type ImageDeleter interface {
	DeleteImage(ctx context.Context, in DeleteImageInput) error
}

// RenditionVerifier checks that a stored image still owns its complete
// rendition set, and evicts it otherwise.
type RenditionVerifier interface {
	VerifyRenditions(ctx context.Context, id uuid.UUID) error
}

// BacklogVerifier enqueues verification for stale unverified images.
type BacklogVerifier interface {
	VerifyBacklog(ctx context.Context) error
}
