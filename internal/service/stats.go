package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nextgen-academy/academy-api/internal/core"
	apperrors "github.com/nextgen-academy/academy-api/internal/errors"
)

// DashboardStats is the count summary shown on the back-office landing page.
type DashboardStats struct {
	Courses           int `json:"courses"`
	Admissions        int `json:"admissions"`
	PendingAdmissions int `json:"pending_admissions"`
	FAQs              int `json:"faqs"`
	GalleryImages     int `json:"gallery_images"`
}

// StatsServiceOptions configures a StatsService.
type StatsServiceOptions struct {
	Courses    core.CourseRepository
	Admissions core.AdmissionRepository
	FAQs       core.FAQRepository
	Gallery    core.GalleryRepository
}

// StatsService aggregates counts across the content repositories.
type StatsService struct {
	courses    core.CourseRepository
	admissions core.AdmissionRepository
	faqs       core.FAQRepository
	gallery    core.GalleryRepository
}

// NewStatsService creates a StatsService from options.
func NewStatsService(opts StatsServiceOptions) (*StatsService, error) {
	if opts.Courses == nil || opts.Admissions == nil || opts.FAQs == nil || opts.Gallery == nil {
		return nil, apperrors.Internal("all repositories are required")
	}
	return &StatsService{
		courses:    opts.Courses,
		admissions: opts.Admissions,
		faqs:       opts.FAQs,
		gallery:    opts.Gallery,
	}, nil
}

// Dashboard gathers all counts concurrently; the first failure cancels the rest.
func (s *StatsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.courses.Count(ctx)
		stats.Courses = n
		return err
	})
	g.Go(func() error {
		n, err := s.admissions.Count(ctx)
		stats.Admissions = n
		return err
	})
	g.Go(func() error {
		n, err := s.admissions.CountByStatus(ctx, "pending")
		stats.PendingAdmissions = n
		return err
	})
	g.Go(func() error {
		n, err := s.faqs.Count(ctx)
		stats.FAQs = n
		return err
	})
	g.Go(func() error {
		n, err := s.gallery.Count(ctx)
		stats.GalleryImages = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
