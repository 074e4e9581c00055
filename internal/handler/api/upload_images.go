package api

import (
	"errors"
	"net"
	"net/http"

	"github.com/afrovibz/product-images-go/internal/api_context"
	"github.com/afrovibz/product-images-go/internal/logger"
	"github.com/afrovibz/product-images-go/internal/port"
	"github.com/afrovibz/product-images-go/internal/usecase/images"
)

// multipart parts beyond this stay on disk instead of memory
const maxMultipartMemory = 32 << 20

// UploadImagesHandler runs the ingestion pipeline for one multipart batch.
// Admission failures map to 400/429; a processed batch always responds 200,
// partial failures included.
func UploadImagesHandler(svc port.ImageUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, ok := api_context.ProductIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "product ID is required", nil)
			return
		}

		in := port.UploadImagesInput{
			ProductID:   productID,
			ClientID:    clientID(r),
			ContentType: r.Header.Get("Content-Type"),
		}

		if err := r.ParseMultipartForm(maxMultipartMemory); err == nil && r.MultipartForm != nil {
			defer func() { _ = r.MultipartForm.RemoveAll() }()
			for _, fh := range r.MultipartForm.File["images"] {
				file, err := fh.Open()
				if err != nil {
					WriteError(w, http.StatusInternalServerError, "could not read uploaded file", err)
					return
				}
				defer func() { _ = file.Close() }()
				in.Files = append(in.Files, port.UploadFile{
					Filename:    fh.Filename,
					ContentType: fh.Header.Get("Content-Type"),
					SizeBytes:   fh.Size,
					Reader:      file,
				})
			}
		}

		out, err := svc.UploadImages(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, images.ErrRateLimitExceeded):
				WriteError(w, http.StatusTooManyRequests, err.Error(), nil)
			case errors.Is(err, images.ErrMissingProductID),
				errors.Is(err, images.ErrInvalidContentType),
				errors.Is(err, images.ErrNoFilesProvided),
				errors.Is(err, images.ErrTooManyFiles),
				errors.Is(err, images.ErrTotalSizeExceeded):
				WriteError(w, http.StatusBadRequest, err.Error(), nil)
			default:
				WriteError(w, http.StatusInternalServerError, "could not process upload", err)
			}
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Processed upload batch for product %q: %d image(s), %d error(s)", productID, len(out.Images), len(out.Errors))
	}
}

// clientID keys the rate limiter: the X-Client-ID header when present, the
// caller's address otherwise. A weak proxy for identity, but good enough to
// bound abuse.
func clientID(r *http.Request) string {
	if id := r.Header.Get("X-Client-ID"); id != "" {
		return id
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
