package worker

import (
	"context"
	"log"

	"github.com/afrovibz/product-images-go/internal/port"
	"github.com/afrovibz/product-images-go/internal/task"
	"github.com/afrovibz/product-images-go/internal/uuid"
)

// VerifyRenditionsHandler handles a verify-renditions task.
// It converts the incoming task payload to the input expected by
// the RenditionVerifier service and delegates the call.
func VerifyRenditionsHandler(ctx context.Context, p task.VerifyRenditionsPayload, svc port.RenditionVerifier) error {
	id, err := uuid.Parse(p.ImageID)
	if err != nil {
		log.Printf("❌  Invalid image ID %q: %v", p.ImageID, err)
		return err
	}

	if err := svc.VerifyRenditions(ctx, id); err != nil {
		log.Printf("❌  Failed to verify renditions of image #%s: %v", id, err)
		return err
	}

	log.Printf("✅  Successfully verified renditions of image #%s", id)
	return nil
}
