package storage

import (
	"fmt"

	"github.com/minio/minio-go/v7"

	"github.com/afrovibz/product-images-go/internal/usecase/images"
)

func mapMinioErr(err error) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey":
		return images.ErrObjectNotFound
	case "NoSuchBucket":
		return images.ErrBucketNotFound
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return images.ErrUnauthorized
	default:
		// catch everything else
		return fmt.Errorf("%w: %v", images.ErrInternal, err)
	}
}
