package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// GalleryImage represents an uploaded image shown on the public gallery page.
type GalleryImage struct {
	ID        string    `json:"id"         db:"id"`
	Title     string    `json:"title"      db:"title"`
	ImagePath string    `json:"image_path" db:"image_path"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

const maxGalleryTitleLen = 200

// CreateGalleryImageRequest records an uploaded image. ImagePath is the
// storage-relative path assigned by the file store, not client input.
type CreateGalleryImageRequest struct {
	Title     string `json:"title"`
	ImagePath string `json:"image_path"`
}

// Validate checks the request for required fields and bounds.
func (r *CreateGalleryImageRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Title) > maxGalleryTitleLen {
		return fmt.Errorf("title cannot exceed %d characters", maxGalleryTitleLen)
	}
	if strings.TrimSpace(r.ImagePath) == "" {
		return errors.New("image_path is required and cannot be empty")
	}
	return nil
}
