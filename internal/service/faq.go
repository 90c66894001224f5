package service

import (
	"context"

	"github.com/nextgen-academy/academy-api/internal/core"
	"github.com/nextgen-academy/academy-api/internal/domain/model"
	apperrors "github.com/nextgen-academy/academy-api/internal/errors"
)

// FAQService manages the FAQ entries shown on the public site.
type FAQService struct {
	repo core.FAQRepository
}

// NewFAQService creates a FAQService.
func NewFAQService(repo core.FAQRepository) (*FAQService, error) {
	if repo == nil {
		return nil, apperrors.Internal("faq repository is required")
	}
	return &FAQService{repo: repo}, nil
}

// Create adds an FAQ entry.
func (s *FAQService) Create(ctx context.Context, req *model.CreateFAQRequest) (*model.FAQ, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	return s.repo.Create(ctx, req)
}

// Get fetches one FAQ entry by id.
func (s *FAQService) Get(ctx context.Context, id string) (*model.FAQ, error) {
	if id == "" {
		return nil, apperrors.Validation("faq id is required")
	}
	return s.repo.GetByID(ctx, id)
}

// List returns all FAQ entries in display order.
func (s *FAQService) List(ctx context.Context) ([]*model.FAQ, error) {
	return s.repo.List(ctx)
}

// Update applies a partial update to an FAQ entry.
func (s *FAQService) Update(ctx context.Context, id string, req model.UpdateFAQRequest) (*model.FAQ, error) {
	if id == "" {
		return nil, apperrors.Validation("faq id is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	return s.repo.Update(ctx, id, req)
}

// Delete removes an FAQ entry. Deleting an unknown id is a NotFound error.
func (s *FAQService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.Validation("faq id is required")
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NotFound("faq not found")
	}
	return nil
}

// Count returns the total number of FAQ entries.
func (s *FAQService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
