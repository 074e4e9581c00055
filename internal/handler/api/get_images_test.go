package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/afrovibz/product-images-go/internal/api_context"
	"github.com/afrovibz/product-images-go/internal/mock"
)

func getRequest(withProductID bool) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/products/prod-1/images", nil)
	if withProductID {
		req = req.WithContext(context.WithValue(req.Context(), api_context.ProductIDKey, "prod-1"))
	}
	return req
}

func TestGetImagesHandler_MissingProductID(t *testing.T) {
	h := GetImagesHandler(&mock.MockHTTPRenderer{}, &mock.MockImageLister{})

	rec := httptest.NewRecorder()
	h(rec, getRequest(false))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetImagesHandler_RendererError(t *testing.T) {
	renderer := &mock.MockHTTPRenderer{Err: errors.New("boom")}
	h := GetImagesHandler(renderer, &mock.MockImageLister{})

	rec := httptest.NewRecorder()
	h(rec, getRequest(true))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestGetImagesHandler_Success(t *testing.T) {
	renderer := &mock.MockHTTPRenderer{Data: []byte(`{"success":true,"images":[]}`), Etag: `"abc123"`}
	h := GetImagesHandler(renderer, &mock.MockImageLister{})

	rec := httptest.NewRecorder()
	h(rec, getRequest(true))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
	}
	if rec.Header().Get("ETag") != `"abc123"` {
		t.Errorf("ETag = %q; want %q", rec.Header().Get("ETag"), `"abc123"`)
	}
	if rec.Body.String() != `{"success":true,"images":[]}` {
		t.Errorf("body = %q", rec.Body.String())
	}
	if renderer.ProductID != "prod-1" {
		t.Errorf("renderer got product %q; want %q", renderer.ProductID, "prod-1")
	}
}

func TestGetImagesHandler_NotModified(t *testing.T) {
	renderer := &mock.MockHTTPRenderer{Data: []byte(`{}`), Etag: `"abc123"`}
	h := GetImagesHandler(renderer, &mock.MockImageLister{})

	rec := httptest.NewRecorder()
	req := getRequest(true)
	req.Header.Set("If-None-Match", `"abc123"`)
	h(rec, req)

	if rec.Code != http.StatusNotModified {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusNotModified)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}
}
