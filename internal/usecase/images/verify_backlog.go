package images

import (
	"context"
	"time"

	"github.com/afrovibz/product-images-go/internal/logger"
	"github.com/afrovibz/product-images-go/internal/port"
)

type backlogVerifierSrv struct {
	repo  port.ImageRepository
	tasks port.TaskDispatcher
}

// compile-time check: *backlogVerifierSrv must satisfy port.BacklogVerifier
var _ port.BacklogVerifier = (*backlogVerifierSrv)(nil)

// NewBacklogVerifier constructs a BacklogVerifier implementation.
func NewBacklogVerifier(repo port.ImageRepository, tasks port.TaskDispatcher) port.BacklogVerifier {
	return &backlogVerifierSrv{repo, tasks}
}

// VerifyBacklog looks for images older than one hour that were never verified
// and enqueues verification tasks for them.
func (s *backlogVerifierSrv) VerifyBacklog(ctx context.Context) error {
	cutoff := time.Now().Add(-1 * time.Hour)
	ids, err := s.repo.ListUnverifiedBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		logger.Info(ctx, "no images found to verify")
	}

	for _, id := range ids {
		logger.Infof(ctx, "starting rendition verification for image #%s", id)
		if err := s.tasks.EnqueueVerifyRenditions(ctx, id); err != nil {
			logger.Warnf(ctx, "failed to enqueue verification task for image #%s: %v", id, err)
		}
	}
	return nil
}
