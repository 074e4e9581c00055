package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/afrovibz/product-images-go/internal/api_context"
	"github.com/afrovibz/product-images-go/internal/logger"
	"github.com/afrovibz/product-images-go/internal/port"
	"github.com/afrovibz/product-images-go/internal/usecase/images"
	msuuid "github.com/afrovibz/product-images-go/internal/uuid"
)

// DeleteImageHandler removes one image from a product's collection.
func DeleteImageHandler(svc port.ImageDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, ok := api_context.ProductIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "product ID is required", nil)
			return
		}

		rawID := r.URL.Query().Get("imageId")
		if rawID == "" {
			WriteError(w, http.StatusBadRequest, "image ID is required", nil)
			return
		}
		imageID, err := msuuid.Parse(rawID)
		if err != nil {
			WriteError(w, http.StatusBadRequest, fmt.Sprintf("image ID %q is not a valid UUID", rawID), nil)
			return
		}

		in := port.DeleteImageInput{ProductID: productID, ImageID: imageID}
		if err := svc.DeleteImage(r.Context(), in); err != nil {
			if errors.Is(err, images.ErrImageNotFound) {
				WriteError(w, http.StatusNotFound, "Image not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Failed to delete image", err)
			return
		}

		RespondJSON(w, http.StatusOK, AckResponse{Success: true, Message: "image deleted"})
		logger.Infof(r.Context(), "✅  Successfully deleted image #%s of product %q", imageID, productID)
	}
}
