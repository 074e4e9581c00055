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
	msuuid "github.com/afrovibz/product-images-go/internal/uuid"
	"github.com/google/uuid"
)

func TestDeleteImageHandler(t *testing.T) {
	validID := msuuid.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	tests := []struct {
		name           string
		withProductID  bool
		imageID        string
		svcErr         error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:           "missing product id",
			imageID:        validID.String(),
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "product ID is required",
		},
		{
			name:           "missing image id",
			withProductID:  true,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "image ID is required",
		},
		{
			name:           "invalid image id",
			withProductID:  true,
			imageID:        "not-a-uuid",
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "not a valid UUID",
		},
		{
			name:           "not found",
			withProductID:  true,
			imageID:        validID.String(),
			svcErr:         imagesUC.ErrImageNotFound,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "Image not found",
		},
		{
			name:           "service error",
			withProductID:  true,
			imageID:        validID.String(),
			svcErr:         errors.New("boom"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "Failed to delete image",
		},
		{
			name:          "happy path",
			withProductID: true,
			imageID:       validID.String(),
			wantStatus:    http.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := &mock.MockImageDeleter{Err: tc.svcErr}
			h := DeleteImageHandler(mockSvc)

			url := "/products/prod-1/images"
			if tc.imageID != "" {
				url += "?imageId=" + tc.imageID
			}
			req := httptest.NewRequest(http.MethodDelete, url, nil)
			if tc.withProductID {
				req = req.WithContext(context.WithValue(req.Context(), api_context.ProductIDKey, "prod-1"))
			}

			rec := httptest.NewRecorder()
			h(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d (body %q)", rec.Code, tc.wantStatus, rec.Body.String())
			}
			if tc.wantStatus == http.StatusOK {
				if mockSvc.In.ImageID != validID || mockSvc.In.ProductID != "prod-1" {
					t.Errorf("service got %+v; want product prod-1 and the image ID", mockSvc.In)
				}
				if !strings.Contains(rec.Body.String(), `"success":true`) {
					t.Errorf("body = %q; want an ack", rec.Body.String())
				}
			} else if !strings.Contains(rec.Body.String(), tc.wantBodySubstr) {
				t.Errorf("body = %q; want to contain %q", rec.Body.String(), tc.wantBodySubstr)
			}
		})
	}
}
