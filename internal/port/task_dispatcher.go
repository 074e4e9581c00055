package port

import (
	"context"

	"github.com/afrovibz/product-images-go/internal/uuid"
)

// TaskDispatcher enqueues asynchronous tasks related to image processing.
type TaskDispatcher interface {
	EnqueueVerifyRenditions(ctx context.Context, id uuid.UUID) error
}
