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

func deletableImage() *model.ProductImage {
	return &model.ProductImage{
		ID:        msuuid.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")),
		ProductID: "prod-1",
		Renditions: model.Renditions{
			{Tier: model.TierOriginal, Format: model.FormatJPEG, ObjectKey: "k1"},
			{Tier: model.TierOriginal, Format: model.FormatWebP, ObjectKey: "k2"},
		},
	}
}

func TestDeleteImage_NotFound(t *testing.T) {
	repo := &mock.MockImageRepo{GetErr: sql.ErrNoRows}
	svc := NewImageDeleter(repo, &mock.Cache{}, &mock.Storage{}, "product-images")

	err := svc.DeleteImage(context.Background(), port.DeleteImageInput{ProductID: "prod-1", ImageID: msuuid.NewUUID()})
	if !errors.Is(err, ErrImageNotFound) {
		t.Fatalf("expected ErrImageNotFound, got %v", err)
	}
}

func TestDeleteImage_WrongProduct(t *testing.T) {
	img := deletableImage()
	repo := &mock.MockImageRepo{ImageRecord: img}
	strg := &mock.Storage{}
	svc := NewImageDeleter(repo, &mock.Cache{}, strg, "product-images")

	err := svc.DeleteImage(context.Background(), port.DeleteImageInput{ProductID: "someone-else", ImageID: img.ID})
	if !errors.Is(err, ErrImageNotFound) {
		t.Fatalf("an image of another product must look not found, got %v", err)
	}
	if strg.RemoveCalled || repo.DeleteCalled {
		t.Error("nothing should be removed for a foreign image")
	}
}

func TestDeleteImage_GetByIDError(t *testing.T) {
	repo := &mock.MockImageRepo{GetErr: errors.New("db fail")}
	svc := NewImageDeleter(repo, &mock.Cache{}, &mock.Storage{}, "product-images")

	err := svc.DeleteImage(context.Background(), port.DeleteImageInput{ProductID: "prod-1", ImageID: msuuid.NewUUID()})
	if err == nil || err.Error() != "db fail" {
		t.Fatalf("expected db fail, got %v", err)
	}
}

func TestDeleteImage_DeleteError(t *testing.T) {
	img := deletableImage()
	repo := &mock.MockImageRepo{ImageRecord: img, DeleteErr: errors.New("delete fail")}
	svc := NewImageDeleter(repo, &mock.Cache{}, &mock.Storage{}, "product-images")

	err := svc.DeleteImage(context.Background(), port.DeleteImageInput{ProductID: "prod-1", ImageID: img.ID})
	if err == nil || err.Error() != "delete fail" {
		t.Fatalf("expected delete fail, got %v", err)
	}
}

func TestDeleteImage_Success(t *testing.T) {
	img := deletableImage()
	repo := &mock.MockImageRepo{ImageRecord: img}
	strg := &mock.Storage{}
	cache := &mock.Cache{}
	svc := NewImageDeleter(repo, cache, strg, "product-images")

	if err := svc.DeleteImage(context.Background(), port.DeleteImageInput{ProductID: "prod-1", ImageID: img.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(strg.RemovedKeys) != len(img.Renditions) {
		t.Errorf("expected %d removed renditions, got %d", len(img.Renditions), len(strg.RemovedKeys))
	}
	if !repo.DeleteCalled || repo.DeletedID != img.ID {
		t.Error("expected repo.Delete to be called with the image ID")
	}
	if !cache.DelImagesCalled || !cache.DelEtagImagesCalled {
		t.Error("expected the listing cache to be invalidated")
	}
}
