package mock

import (
	"context"

	"github.com/afrovibz/product-images-go/internal/port"
	"github.com/afrovibz/product-images-go/internal/uuid"
)

// MockImageUploader implements port.ImageUploader for tests.
type MockImageUploader struct {
	Out *port.UploadImagesOutput
	Err error

	Called bool
	In     port.UploadImagesInput
}

func (m *MockImageUploader) UploadImages(ctx context.Context, in port.UploadImagesInput) (*port.UploadImagesOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockImageLister implements port.ImageLister for tests.
type MockImageLister struct {
	Out *port.ListImagesOutput
	Err error

	Called    bool
	ProductID string
}

func (m *MockImageLister) ListImages(ctx context.Context, productID string) (*port.ListImagesOutput, error) {
	m.Called = true
	m.ProductID = productID
	return m.Out, m.Err
}

// MockImageReorderer implements port.ImageReorderer for tests.
type MockImageReorderer struct {
	Err error

	Called bool
	In     port.ReorderImagesInput
}

func (m *MockImageReorderer) ReorderImages(ctx context.Context, in port.ReorderImagesInput) error {
	m.Called = true
	m.In = in
	return m.Err
}

// MockImageDeleter implements port.ImageDeleter for tests.
type MockImageDeleter struct {
	Err error

	Called bool
	In     port.DeleteImageInput
}

func (m *MockImageDeleter) DeleteImage(ctx context.Context, in port.DeleteImageInput) error {
	m.Called = true
	m.In = in
	return m.Err
}

// MockRenditionVerifier implements port.RenditionVerifier for tests.
type MockRenditionVerifier struct {
	Err error

	Called bool
	ID     uuid.UUID
}

func (m *MockRenditionVerifier) VerifyRenditions(ctx context.Context, id uuid.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}
