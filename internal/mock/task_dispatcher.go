package mock

import (
	"context"

	"github.com/afrovibz/product-images-go/internal/uuid"
)

// MockDispatcher implements port.TaskDispatcher for tests.
type MockDispatcher struct {
	VerifyErr error

	VerifyCalled bool
	VerifyIDs    []uuid.UUID
}

func (m *MockDispatcher) EnqueueVerifyRenditions(ctx context.Context, id uuid.UUID) error {
	m.VerifyCalled = true
	m.VerifyIDs = append(m.VerifyIDs, id)
	return m.VerifyErr
}
