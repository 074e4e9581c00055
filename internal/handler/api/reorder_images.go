package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/afrovibz/product-images-go/internal/api_context"
	"github.com/afrovibz/product-images-go/internal/logger"
	"github.com/afrovibz/product-images-go/internal/port"
	"github.com/afrovibz/product-images-go/internal/usecase/images"
	msuuid "github.com/afrovibz/product-images-go/internal/uuid"
	"github.com/afrovibz/product-images-go/internal/validation"
)

type ReorderImagesRequest struct {
	ImageOrder []string `json:"imageOrder" validate:"required,min=1,dive,uuid"`
}

func ReorderImagesHandler(svc port.ImageReorderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, ok := api_context.ProductIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "product ID is required", nil)
			return
		}

		var req ReorderImagesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", err)
				return
			}
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		ids := make([]msuuid.UUID, 0, len(req.ImageOrder))
		for _, raw := range req.ImageOrder {
			id, err := msuuid.Parse(raw)
			if err != nil {
				WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid UUID %q: %w", raw, err))
				return
			}
			ids = append(ids, id)
		}

		in := port.ReorderImagesInput{ProductID: productID, ImageOrder: ids}
		if err := svc.ReorderImages(r.Context(), in); err != nil {
			if errors.Is(err, images.ErrInvalidOrderList) {
				WriteError(w, http.StatusBadRequest, err.Error(), nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not reorder images of product %q", productID), err)
			return
		}

		RespondJSON(w, http.StatusOK, AckResponse{Success: true, Message: "image order updated"})
		logger.Infof(r.Context(), "✅  Successfully reordered images of product %q", productID)
	}
}
