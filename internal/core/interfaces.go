package core

import (
	"context"
	"io"
	"time"

	"github.com/nextgen-academy/academy-api/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// CourseRepository defines the interface for course data operations.
type CourseRepository interface {
	Create(ctx context.Context, req *model.CreateCourseRequest) (*model.Course, error)
	GetByID(ctx context.Context, id string) (*model.Course, error)
	List(ctx context.Context, opts model.CoursesListOptions) ([]*model.Course, error)
	Update(ctx context.Context, id string, req model.UpdateCourseRequest) (*model.Course, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// AdmissionRepository defines the interface for admission submissions.
type AdmissionRepository interface {
	Create(ctx context.Context, req *model.CreateAdmissionRequest) (*model.Admission, error)
	GetByID(ctx context.Context, id string) (*model.Admission, error)
	List(ctx context.Context, opts model.AdmissionsListOptions) ([]*model.Admission, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.Admission, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}

// FAQRepository defines the interface for FAQ entries.
type FAQRepository interface {
	Create(ctx context.Context, req *model.CreateFAQRequest) (*model.FAQ, error)
	GetByID(ctx context.Context, id string) (*model.FAQ, error)
	List(ctx context.Context) ([]*model.FAQ, error)
	Update(ctx context.Context, id string, req model.UpdateFAQRequest) (*model.FAQ, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// GalleryRepository defines the interface for gallery image records.
type GalleryRepository interface {
	Create(ctx context.Context, req *model.CreateGalleryImageRequest) (*model.GalleryImage, error)
	GetByID(ctx context.Context, id string) (*model.GalleryImage, error)
	List(ctx context.Context, limit, offset int) ([]*model.GalleryImage, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// CourseCache caches the public active-course list.
type CourseCache interface {
	Get(ctx context.Context, key string) ([]*model.Course, bool, error)
	Set(ctx context.Context, key string, courses []*model.Course, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// ImageStore persists uploaded gallery image bytes and serves them back.
type ImageStore interface {
	// Save writes the image and returns its storage-relative path.
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	// Remove deletes a stored image. Missing files are not an error.
	Remove(ctx context.Context, path string) error
}
