package images

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/afrovibz/product-images-go/internal/port"
)

// validatedFile is the materialised form of one accepted input file: a temp
// artifact on disk plus the pixel buffer decoded during deep validation.
type validatedFile struct {
	index       int
	filename    string
	sizeBytes   int64
	tempPath    string
	decoded     port.DecodedImage
	suggestions []string
}

// validateFile runs the per-file checks in order, short-circuiting on the
// first failure: byte size, declared MIME type, filename extension, temp
// write, then deep content validation by decoding the artifact. The temp
// artifact of a file that fails deep validation is deleted immediately.
func (s *uploaderSrv) validateFile(f port.UploadFile, index int) (*validatedFile, error) {
	if f.SizeBytes > MaxFileSize {
		return nil, fmt.Errorf("%w: file size is %d bytes (max size: %d bytes)", ErrFileTooLarge, f.SizeBytes, MaxFileSize)
	}

	if !IsMimeTypeAllowed(f.ContentType) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, f.ContentType)
	}

	ext := strings.ToLower(filepath.Ext(f.Filename))
	if !IsExtensionAllowed(ext) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}

	tempPath, err := s.writeTemp(f, index, ext)
	if err != nil {
		return nil, err
	}

	decoded, err := s.deepValidate(tempPath)
	if err != nil {
		// broken artifact, no point keeping it around for cleanup
		_ = os.Remove(tempPath)
		return nil, err
	}

	vf := &validatedFile{
		index:     index,
		filename:  f.Filename,
		sizeBytes: f.SizeBytes,
		tempPath:  tempPath,
		decoded:   decoded,
	}
	if decoded.Width > largeDimensionPx || decoded.Height > largeDimensionPx {
		vf.suggestions = append(vf.suggestions, fmt.Sprintf("image is very large (%dx%d), consider resizing before upload", decoded.Width, decoded.Height))
	}
	return vf, nil
}

// writeTemp copies the raw bytes to an isolated temp location. The name mixes
// a timestamp, the file's batch index and a random suffix so concurrent
// requests never collide.
func (s *uploaderSrv) writeTemp(f port.UploadFile, index int, ext string) (string, error) {
	pattern := fmt.Sprintf("upload_%d_%d_*%s", time.Now().UnixNano(), index, ext)
	tmp, err := os.CreateTemp(s.tempDir, pattern)
	if err != nil {
		return "", fmt.Errorf("could not create temp artifact for %q: %w", f.Filename, err)
	}

	if _, err := io.Copy(tmp, f.Reader); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("could not write temp artifact for %q: %w", f.Filename, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("could not close temp artifact for %q: %w", f.Filename, err)
	}
	return tmp.Name(), nil
}

func (s *uploaderSrv) deepValidate(tempPath string) (port.DecodedImage, error) {
	file, err := os.Open(tempPath)
	if err != nil {
		return port.DecodedImage{}, fmt.Errorf("could not reopen temp artifact: %w", err)
	}
	defer func() { _ = file.Close() }()

	decoded, err := s.codec.Decode(file)
	if err != nil {
		return port.DecodedImage{}, fmt.Errorf("%w: %v", ErrInvalidImageContent, err)
	}
	if decoded.Width <= 0 || decoded.Height <= 0 {
		return port.DecodedImage{}, fmt.Errorf("%w: image has zero dimensions", ErrInvalidImageContent)
	}
	return decoded, nil
}
