package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/nextgen-academy/academy-api/internal/core"
	"github.com/nextgen-academy/academy-api/internal/domain/model"
	apperrors "github.com/nextgen-academy/academy-api/internal/errors"
)

// GalleryServiceOptions configures a GalleryService.
type GalleryServiceOptions struct {
	Repo   core.GalleryRepository
	Images core.ImageStore
	Logger *slog.Logger
}

// GalleryService coordinates gallery records with their stored image files.
// The database row is the source of truth; file operations that fail after a
// successful row write are logged and cleaned up best-effort.
type GalleryService struct {
	repo   core.GalleryRepository
	images core.ImageStore
	logger *slog.Logger
}

// NewGalleryService creates a GalleryService from options.
func NewGalleryService(opts GalleryServiceOptions) (*GalleryService, error) {
	if opts.Repo == nil {
		return nil, apperrors.Internal("gallery repository is required")
	}
	if opts.Images == nil {
		return nil, apperrors.Internal("image store is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &GalleryService{repo: opts.Repo, images: opts.Images, logger: opts.Logger}, nil
}

// Upload stores the image bytes and records a gallery entry. If the record
// insert fails, the stored file is removed so no orphan remains.
func (s *GalleryService) Upload(ctx context.Context, title, filename string, r io.Reader) (*model.GalleryImage, error) {
	path, err := s.images.Save(ctx, filename, r)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	req := &model.CreateGalleryImageRequest{Title: title, ImagePath: path}
	if err := req.Validate(); err != nil {
		s.removeFile(ctx, path)
		return nil, apperrors.Validation(err.Error())
	}

	image, err := s.repo.Create(ctx, req)
	if err != nil {
		s.removeFile(ctx, path)
		return nil, err
	}
	return image, nil
}

// Get fetches one gallery entry by id.
func (s *GalleryService) Get(ctx context.Context, id string) (*model.GalleryImage, error) {
	if id == "" {
		return nil, apperrors.Validation("gallery image id is required")
	}
	return s.repo.GetByID(ctx, id)
}

// List returns gallery entries, newest first.
func (s *GalleryService) List(ctx context.Context, limit, offset int) ([]*model.GalleryImage, error) {
	normalizeListBounds(&limit, &offset)
	return s.repo.List(ctx, limit, offset)
}

// Delete removes a gallery entry and its stored file. A file that is already
// gone does not fail the delete.
func (s *GalleryService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.Validation("gallery image id is required")
	}

	image, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NotFound("gallery image not found")
	}

	s.removeFile(ctx, image.ImagePath)
	return nil
}

// Count returns the total number of gallery entries.
func (s *GalleryService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *GalleryService) removeFile(ctx context.Context, path string) {
	if err := s.images.Remove(ctx, path); err != nil {
		s.logger.WarnContext(ctx, "gallery file cleanup failed", "path", path, "error", err)
	}
}
