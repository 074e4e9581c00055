package images

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/afrovibz/product-images-go/internal/logger"
	"github.com/afrovibz/product-images-go/internal/model"
	"github.com/afrovibz/product-images-go/internal/port"
)

type uploaderSrv struct {
	repo    port.ImageRepository
	strg    port.Storage
	codec   port.Codec
	limiter port.RateLimiter
	cache   port.Cache
	tasks   port.TaskDispatcher
	genUUID port.UUIDGen
	bucket  string
	tempDir string
}

// compile-time check: *uploaderSrv must satisfy port.ImageUploader
var _ port.ImageUploader = (*uploaderSrv)(nil)

// NewImageUploader constructs an ImageUploader implementation. tempDir may be
// empty to use the OS default temp location.
func NewImageUploader(
	repo port.ImageRepository,
	strg port.Storage,
	codec port.Codec,
	limiter port.RateLimiter,
	cache port.Cache,
	tasks port.TaskDispatcher,
	genUUID port.UUIDGen,
	bucket, tempDir string,
) port.ImageUploader {
	return &uploaderSrv{repo, strg, codec, limiter, cache, tasks, genUUID, bucket, tempDir}
}

// UploadImages runs the full pipeline for one batch: admission, per-file
// validation, batch size ceiling, per-file optimisation, and response
// assembly. Admission failures and the batch size ceiling return an error;
// per-file failures are accumulated into the output instead.
func (s *uploaderSrv) UploadImages(ctx context.Context, in port.UploadImagesInput) (*port.UploadImagesOutput, error) {
	if err := s.admit(ctx, in); err != nil {
		return nil, err
	}

	validated := make([]*validatedFile, len(in.Files))
	fileErrs := make([]error, len(in.Files))

	// Temp artifacts are purged whatever the outcome mix.
	var tempPaths []string
	defer func() {
		s.cleanupTemp(ctx, tempPaths)
	}()

	var acceptedBytes int64
	for i, f := range in.Files {
		vf, err := s.validateFile(f, i)
		if err != nil {
			fileErrs[i] = err
			continue
		}
		validated[i] = vf
		tempPaths = append(tempPaths, vf.tempPath)
		acceptedBytes += vf.sizeBytes
	}

	if acceptedBytes > MaxBatchSize {
		return nil, fmt.Errorf("%w: %d bytes across accepted files (max %d bytes)", ErrTotalSizeExceeded, acceptedBytes, MaxBatchSize)
	}

	maxPos, err := s.repo.MaxPosition(ctx, in.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed reading current collection position for product %q: %w", in.ProductID, err)
	}

	// Optimise accepted files concurrently; results stay slotted by input
	// index so both lists preserve the original file order.
	optimised := make([]*model.ProductImage, len(in.Files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, vf := range validated {
		if vf == nil {
			continue
		}
		i, vf := i, vf
		g.Go(func() error {
			img, err := s.optimiseFile(gctx, in.ProductID, vf)
			if err != nil {
				fileErrs[i] = err
				return nil
			}
			optimised[i] = img
			return nil
		})
	}
	_ = g.Wait()

	// Append successes to the collection in input order.
	position := maxPos
	for i, img := range optimised {
		if img == nil {
			continue
		}
		position++
		img.Position = position
		if err := s.repo.Create(ctx, img); err != nil {
			s.removeRenditions(ctx, img.Renditions)
			optimised[i] = nil
			fileErrs[i] = fmt.Errorf("%w: failed to persist image: %v", ErrOptimizationFailed, err)
			position--
		}
	}

	out := s.assemble(ctx, in, optimised, fileErrs, validated)

	if len(out.Images) > 0 {
		s.invalidateListing(ctx, in.ProductID)
		for _, img := range out.Images {
			if err := s.tasks.EnqueueVerifyRenditions(ctx, img.ID); err != nil {
				logger.Warnf(ctx, "failed to enqueue rendition verification for image #%s: %v", img.ID, err)
			}
		}
	}

	return out, nil
}

func (s *uploaderSrv) admit(ctx context.Context, in port.UploadImagesInput) error {
	if in.ProductID == "" {
		return ErrMissingProductID
	}

	allowed, err := s.limiter.Allow(ctx, in.ClientID)
	if err != nil {
		// a broken limiter should not take uploads down with it
		logger.Warnf(ctx, "rate limiter failed for client %q, letting request through: %v", in.ClientID, err)
	} else if !allowed {
		return ErrRateLimitExceeded
	}

	if !strings.HasPrefix(in.ContentType, "multipart/form-data") {
		return ErrInvalidContentType
	}
	if len(in.Files) == 0 {
		return ErrNoFilesProvided
	}
	if len(in.Files) > MaxFilesPerRequest {
		return fmt.Errorf("%w: %d files (max %d per request)", ErrTooManyFiles, len(in.Files), MaxFilesPerRequest)
	}
	return nil
}

func (s *uploaderSrv) assemble(ctx context.Context, in port.UploadImagesInput, optimised []*model.ProductImage, fileErrs []error, validated []*validatedFile) *port.UploadImagesOutput {
	out := &port.UploadImagesOutput{}
	for i := range in.Files {
		switch {
		case optimised[i] != nil:
			out.Images = append(out.Images, *optimised[i])
			for _, sg := range validated[i].suggestions {
				out.Suggestions = append(out.Suggestions, fmt.Sprintf("%s: %s", in.Files[i].Filename, sg))
			}
		case fileErrs[i] != nil:
			out.Errors = append(out.Errors, fmt.Sprintf("%s: %v", in.Files[i].Filename, fileErrs[i]))
		}
	}

	out.Success = len(out.Images) > 0
	if out.Success {
		out.Message = fmt.Sprintf("%d image(s) uploaded, %d failed", len(out.Images), len(out.Errors))
	} else {
		out.Message = "no image could be processed"
	}

	// audit trail, not part of the response contract
	logger.Infof(ctx, "upload batch for product %q: %d succeeded, %d failed", in.ProductID, len(out.Images), len(out.Errors))

	return out
}

func (s *uploaderSrv) cleanupTemp(ctx context.Context, paths []string) {
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			logger.Warnf(ctx, "failed to remove temp artifact %q: %v", p, err)
		}
	}
}

func (s *uploaderSrv) invalidateListing(ctx context.Context, productID string) {
	if err := s.cache.DeleteProductImages(ctx, productID); err != nil {
		logger.Warnf(ctx, "failed deleting listing cache for product %q: %v", productID, err)
	}
	if err := s.cache.DeleteEtagProductImages(ctx, productID); err != nil {
		logger.Warnf(ctx, "failed deleting listing etag cache for product %q: %v", productID, err)
	}
}
