package images

import "errors"

// Admission errors: terminal for the whole request, no per-file work happens.
var (
	ErrMissingProductID   = errors.New("product ID is required")
	ErrRateLimitExceeded  = errors.New("too many upload requests, retry later")
	ErrInvalidContentType = errors.New("request must be a multipart form submission")
	ErrNoFilesProvided    = errors.New("no files provided")
	ErrTooManyFiles       = errors.New("too many files in one request")
)

// ErrTotalSizeExceeded aborts the entire batch after admission but before any
// optimisation starts; every temp artifact created so far is purged.
var ErrTotalSizeExceeded = errors.New("total upload size exceeds the batch limit")

// Per-file errors: isolated to the offending file, sibling files continue.
var (
	ErrFileTooLarge         = errors.New("file too large")
	ErrUnsupportedType      = errors.New("unsupported mime-type")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrInvalidImageContent  = errors.New("invalid image content")
	ErrOptimizationFailed   = errors.New("optimisation failed")
)

// Collection mutation errors.
var (
	ErrInvalidOrderList = errors.New("order list must match the product's image set exactly")
	ErrImageNotFound    = errors.New("image not found")
)

// Storage sentinels, mapped from driver errors by the storage adapter.
var (
	ErrObjectNotFound = errors.New("storage: object not found")
	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrUnauthorized   = errors.New("storage: unauthorized")
	ErrInternal       = errors.New("storage: internal error")
)
