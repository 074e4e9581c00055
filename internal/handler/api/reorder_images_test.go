package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/afrovibz/product-images-go/internal/api_context"
	"github.com/afrovibz/product-images-go/internal/mock"
	imagesUC "github.com/afrovibz/product-images-go/internal/usecase/images"
)

func reorderRequest(withProductID bool, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/products/prod-1/images", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if withProductID {
		req = req.WithContext(context.WithValue(req.Context(), api_context.ProductIDKey, "prod-1"))
	}
	return req
}

func TestReorderImagesHandler(t *testing.T) {
	const validBody = `{"imageOrder":["aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee","11111111-2222-3333-4444-555555555555"]}`
	tests := []struct {
		name          string
		withProductID bool
		body          string
		svcErr        error
		wantStatus    int
		wantCalled    bool
	}{
		{
			name:       "missing product id",
			body:       validBody,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:          "malformed json",
			withProductID: true,
			body:          `{"imageOrder":`,
			wantStatus:    http.StatusBadRequest,
		},
		{
			name:          "empty order list",
			withProductID: true,
			body:          `{"imageOrder":[]}`,
			wantStatus:    http.StatusBadRequest,
		},
		{
			name:          "non-uuid entry",
			withProductID: true,
			body:          `{"imageOrder":["not-a-uuid"]}`,
			wantStatus:    http.StatusBadRequest,
		},
		{
			name:          "order list mismatch",
			withProductID: true,
			body:          validBody,
			svcErr:        imagesUC.ErrInvalidOrderList,
			wantStatus:    http.StatusBadRequest,
			wantCalled:    true,
		},
		{
			name:          "service error",
			withProductID: true,
			body:          validBody,
			svcErr:        errors.New("boom"),
			wantStatus:    http.StatusInternalServerError,
			wantCalled:    true,
		},
		{
			name:          "happy path",
			withProductID: true,
			body:          validBody,
			wantStatus:    http.StatusOK,
			wantCalled:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := &mock.MockImageReorderer{Err: tc.svcErr}
			h := ReorderImagesHandler(mockSvc)

			rec := httptest.NewRecorder()
			h(rec, reorderRequest(tc.withProductID, tc.body))

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d (body %q)", rec.Code, tc.wantStatus, rec.Body.String())
			}
			if mockSvc.Called != tc.wantCalled {
				t.Errorf("service called = %v; want %v", mockSvc.Called, tc.wantCalled)
			}
			if tc.wantStatus == http.StatusOK {
				if len(mockSvc.In.ImageOrder) != 2 {
					t.Errorf("service got %d ids; want 2", len(mockSvc.In.ImageOrder))
				}
				if !strings.Contains(rec.Body.String(), `"success":true`) {
					t.Errorf("body = %q; want an ack", rec.Body.String())
				}
			}
		})
	}
}
