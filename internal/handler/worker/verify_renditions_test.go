package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/afrovibz/product-images-go/internal/mock"
	"github.com/afrovibz/product-images-go/internal/task"
)

func TestVerifyRenditionsHandler_InvalidID(t *testing.T) {
	svc := &mock.MockRenditionVerifier{}
	p := task.VerifyRenditionsPayload{ImageID: "not-a-uuid"}

	if err := VerifyRenditionsHandler(context.Background(), p, svc); err == nil {
		t.Fatal("expected an error for a malformed image ID")
	}
	if svc.Called {
		t.Error("service should not be reached with a malformed ID")
	}
}

func TestVerifyRenditionsHandler_ServiceError(t *testing.T) {
	svc := &mock.MockRenditionVerifier{Err: errors.New("boom")}
	p := task.VerifyRenditionsPayload{ImageID: "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"}

	if err := VerifyRenditionsHandler(context.Background(), p, svc); err == nil {
		t.Fatal("expected the service error to propagate")
	}
}

func TestVerifyRenditionsHandler_Success(t *testing.T) {
	svc := &mock.MockRenditionVerifier{}
	p := task.VerifyRenditionsPayload{ImageID: "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"}

	if err := VerifyRenditionsHandler(context.Background(), p, svc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !svc.Called || svc.ID.String() != p.ImageID {
		t.Errorf("service called with %s; want %s", svc.ID, p.ImageID)
	}
}
