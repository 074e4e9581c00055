package images

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/afrovibz/product-images-go/internal/mock"
	"github.com/afrovibz/product-images-go/internal/model"
	"github.com/afrovibz/product-images-go/internal/port"
	msuuid "github.com/afrovibz/product-images-go/internal/uuid"
	"github.com/google/uuid"
)

const verifiableRenditionSize = 1234

func verifiableImage() *model.ProductImage {
	img := &model.ProductImage{
		ID:        msuuid.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")),
		ProductID: "prod-1",
	}
	for _, tier := range []string{model.TierOriginal, model.TierLarge, model.TierMedium, model.TierThumbnail} {
		for _, format := range []string{model.FormatJPEG, model.FormatWebP} {
			img.Renditions = append(img.Renditions, model.Rendition{
				Tier:      tier,
				Format:    format,
				ObjectKey: tier + "." + format,
				SizeBytes: verifiableRenditionSize,
			})
		}
	}
	return img
}

func TestVerifyRenditions_AlreadyDeleted(t *testing.T) {
	repo := &mock.MockImageRepo{GetErr: sql.ErrNoRows}
	svc := NewRenditionVerifier(repo, &mock.Storage{}, &mock.Cache{}, "product-images")

	if err := svc.VerifyRenditions(context.Background(), msuuid.NewUUID()); err != nil {
		t.Fatalf("a deleted image is not an error, got %v", err)
	}
}

func TestVerifyRenditions_AllPresent(t *testing.T) {
	img := verifiableImage()
	repo := &mock.MockImageRepo{ImageRecord: img}
	strg := &mock.Storage{StatInfoOut: port.FileInfo{SizeBytes: verifiableRenditionSize}}
	svc := NewRenditionVerifier(repo, strg, &mock.Cache{}, "product-images")

	if err := svc.VerifyRenditions(context.Background(), img.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.MarkCalled || repo.MarkedID != img.ID {
		t.Error("expected the image to be marked verified")
	}
	if repo.DeleteCalled {
		t.Error("a complete image must not be evicted")
	}
}

func TestVerifyRenditions_MissingObjectEvicts(t *testing.T) {
	img := verifiableImage()
	repo := &mock.MockImageRepo{ImageRecord: img}
	strg := &mock.Storage{StatErr: ErrObjectNotFound}
	cache := &mock.Cache{}
	svc := NewRenditionVerifier(repo, strg, cache, "product-images")

	if err := svc.VerifyRenditions(context.Background(), img.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.DeleteCalled || repo.DeletedID != img.ID {
		t.Error("expected the image to be evicted")
	}
	if repo.MarkCalled {
		t.Error("an incomplete image must not be marked verified")
	}
	if !cache.DelImagesCalled {
		t.Error("expected the listing cache to be invalidated")
	}
}

func TestVerifyRenditions_SizeMismatchEvicts(t *testing.T) {
	img := verifiableImage()
	repo := &mock.MockImageRepo{ImageRecord: img}
	strg := &mock.Storage{StatInfoOut: port.FileInfo{SizeBytes: verifiableRenditionSize - 1}}
	svc := NewRenditionVerifier(repo, strg, &mock.Cache{}, "product-images")

	if err := svc.VerifyRenditions(context.Background(), img.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.DeleteCalled {
		t.Error("a truncated rendition must evict the whole image")
	}
	if repo.MarkCalled {
		t.Error("a truncated rendition must not be marked verified")
	}
}

func TestVerifyRenditions_IncompleteSetEvicts(t *testing.T) {
	img := verifiableImage()
	img.Renditions = img.Renditions[:3]
	repo := &mock.MockImageRepo{ImageRecord: img}
	strg := &mock.Storage{StatInfoOut: port.FileInfo{SizeBytes: verifiableRenditionSize}}
	svc := NewRenditionVerifier(repo, strg, &mock.Cache{}, "product-images")

	if err := svc.VerifyRenditions(context.Background(), img.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strg.StatCalled {
		t.Error("no need to stat storage when the recorded set is already short")
	}
	if !repo.DeleteCalled {
		t.Error("expected the image to be evicted")
	}
}

func TestVerifyRenditions_StatError(t *testing.T) {
	img := verifiableImage()
	repo := &mock.MockImageRepo{ImageRecord: img}
	strg := &mock.Storage{StatErr: errors.New("minio down")}
	svc := NewRenditionVerifier(repo, strg, &mock.Cache{}, "product-images")

	if err := svc.VerifyRenditions(context.Background(), img.ID); err == nil {
		t.Fatal("expected an error when storage cannot be reached")
	}
	if repo.DeleteCalled {
		t.Error("an unreachable storage must not trigger eviction")
	}
}
