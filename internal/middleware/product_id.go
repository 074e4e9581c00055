package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/afrovibz/product-images-go/internal/api_context"
	"github.com/afrovibz/product-images-go/internal/handler/api"
)

func WithProductID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			productID := chi.URLParam(r, "productID")
			if productID == "" {
				api.WriteError(w, http.StatusBadRequest, "product ID is required", nil)
				return
			}

			// stash it in context and call the real handler
			ctx := context.WithValue(r.Context(), api_context.ProductIDKey, productID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
