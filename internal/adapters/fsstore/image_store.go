// Package fsstore stores uploaded gallery images on the local filesystem.
package fsstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageStore writes uploaded images under a base directory and addresses them
// by a storage-relative path. File names are generated, never taken from
// client input.
type ImageStore struct {
	baseDir  string
	maxBytes int64
}

// NewImageStore creates the base directory if needed and returns a store.
func NewImageStore(baseDir string, maxBytes int64) (*ImageStore, error) {
	if baseDir == "" {
		return nil, errors.New("image store base directory is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create image directory: %w", err)
	}
	return &ImageStore{baseDir: baseDir, maxBytes: maxBytes}, nil
}

// Save writes the image and returns its storage-relative path. The original
// filename contributes only its extension; content larger than the configured
// limit is rejected.
func (s *ImageStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtension(ext) {
		return "", fmt.Errorf("unsupported image extension %q", ext)
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(s.baseDir, name)

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}

	limited := r
	if s.maxBytes > 0 {
		limited = io.LimitReader(r, s.maxBytes+1)
	}
	n, copyErr := io.Copy(f, limited)
	closeErr := f.Close()

	if copyErr != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("write image: %w", copyErr)
	}
	if closeErr != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("close image file: %w", closeErr)
	}
	if s.maxBytes > 0 && n > s.maxBytes {
		_ = os.Remove(dst)
		return "", fmt.Errorf("image exceeds maximum size of %d bytes", s.maxBytes)
	}

	return name, nil
}

// Remove deletes a stored image. Missing files are not an error.
func (s *ImageStore) Remove(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Reject anything that could escape the base directory.
	if path == "" || path != filepath.Base(path) {
		return fmt.Errorf("invalid image path %q", path)
	}

	err := os.Remove(filepath.Join(s.baseDir, path))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}

// Open returns a reader for a stored image, used to serve gallery files.
func (s *ImageStore) Open(path string) (*os.File, error) {
	if path == "" || path != filepath.Base(path) {
		return nil, fmt.Errorf("invalid image path %q", path)
	}
	return os.Open(filepath.Join(s.baseDir, path))
}

func allowedExtension(ext string) bool {
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return true
	default:
		return false
	}
}
