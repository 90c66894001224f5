package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/nextgen-academy/academy-api/internal/core"
	"github.com/nextgen-academy/academy-api/internal/domain/model"
	apperrors "github.com/nextgen-academy/academy-api/internal/errors"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100

	defaultCourseCacheTTL = 5 * time.Minute

	// publicCoursesKey prefixes cache keys for the public active-course list.
	publicCoursesKey = "public"
)

// CourseServiceOptions configures a CourseService. Cache is optional; without
// it every public listing hits the database.
type CourseServiceOptions struct {
	Repo     core.CourseRepository
	Cache    core.CourseCache
	CacheTTL time.Duration
	Logger   *slog.Logger
}

// CourseService manages the course catalog: the public active listing and the
// full back-office CRUD surface.
type CourseService struct {
	repo     core.CourseRepository
	cache    core.CourseCache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewCourseService creates a CourseService from options.
func NewCourseService(opts CourseServiceOptions) (*CourseService, error) {
	if opts.Repo == nil {
		return nil, apperrors.Internal("course repository is required")
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCourseCacheTTL
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &CourseService{
		repo:     opts.Repo,
		cache:    opts.Cache,
		cacheTTL: opts.CacheTTL,
		logger:   opts.Logger,
	}, nil
}

// Create adds a course and invalidates the public listing cache.
func (s *CourseService) Create(ctx context.Context, req *model.CreateCourseRequest) (*model.Course, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	course, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return course, nil
}

// Get fetches one course by id.
func (s *CourseService) Get(ctx context.Context, id string) (*model.Course, error) {
	if id == "" {
		return nil, apperrors.Validation("course id is required")
	}
	return s.repo.GetByID(ctx, id)
}

// List returns courses for the back-office with filters and pagination.
func (s *CourseService) List(ctx context.Context, opts model.CoursesListOptions) ([]*model.Course, error) {
	normalizeListBounds(&opts.Limit, &opts.Offset)
	return s.repo.List(ctx, opts)
}

// ListPublic returns active courses for the public site, served from cache
// when possible. Cache failures degrade to a database read, never an error.
func (s *CourseService) ListPublic(ctx context.Context, category *string) ([]*model.Course, error) {
	key := publicCoursesKey
	if category != nil && *category != "" {
		key += ":" + *category
	}

	if s.cache != nil {
		courses, hit, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.WarnContext(ctx, "course cache read failed", "key", key, "error", err)
		} else if hit {
			return courses, nil
		}
	}

	status := model.CourseStatusActive
	courses, err := s.repo.List(ctx, model.CoursesListOptions{
		Category: category,
		Status:   &status,
		Limit:    maxListLimit,
		Sort:     "title",
		Dir:      "asc",
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, courses, s.cacheTTL); err != nil {
			s.logger.WarnContext(ctx, "course cache write failed", "key", key, "error", err)
		}
	}
	return courses, nil
}

// Update applies a partial update and invalidates the public listing cache.
func (s *CourseService) Update(ctx context.Context, id string, req model.UpdateCourseRequest) (*model.Course, error) {
	if id == "" {
		return nil, apperrors.Validation("course id is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	course, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return course, nil
}

// Delete removes a course. Deleting an unknown id is a NotFound error.
func (s *CourseService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.Validation("course id is required")
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NotFound("course not found")
	}
	s.invalidateCache(ctx)
	return nil
}

// Count returns the total number of courses.
func (s *CourseService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// invalidateCache is best-effort; a failure means stale reads until TTL, not
// a failed write.
func (s *CourseService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.WarnContext(ctx, "course cache invalidation failed", "error", err)
	}
}

// normalizeListBounds clamps pagination inputs to sane values.
func normalizeListBounds(limit, offset *int) {
	if *limit <= 0 {
		*limit = defaultListLimit
	}
	if *limit > maxListLimit {
		*limit = maxListLimit
	}
	if *offset < 0 {
		*offset = 0
	}
}
