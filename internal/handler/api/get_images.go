package api

import (
	"net/http"

	"github.com/afrovibz/product-images-go/internal/api_context"
	"github.com/afrovibz/product-images-go/internal/logger"
	"github.com/afrovibz/product-images-go/internal/port"
)

func GetImagesHandler(renderer port.HTTPRenderer, svc port.ImageLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, ok := api_context.ProductIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "product ID is required", nil)
			return
		}

		raw, etag, err := renderer.RenderListImages(r.Context(), svc, productID)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not list product images", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=300")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			logger.Infof(r.Context(), "✅  Returning cached listing for product %q", productID)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		logger.Infof(r.Context(), "✅  Successfully listed images for product %q", productID)
	}
}
