package mock

import (
	"context"

	"github.com/afrovibz/product-images-go/internal/port"
)

// MockHTTPRenderer implements port.HTTPRenderer for tests.
type MockHTTPRenderer struct {
	Data []byte
	Etag string
	Err  error

	Called    bool
	Lister    port.ImageLister
	ProductID string
}

func (m *MockHTTPRenderer) RenderListImages(ctx context.Context, lister port.ImageLister, productID string) ([]byte, string, error) {
	m.Called = true
	m.Lister = lister
	m.ProductID = productID
	return m.Data, m.Etag, m.Err
}
