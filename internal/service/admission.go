package service

import (
	"context"
	"log/slog"

	"github.com/nextgen-academy/academy-api/internal/core"
	"github.com/nextgen-academy/academy-api/internal/domain/model"
	apperrors "github.com/nextgen-academy/academy-api/internal/errors"
	"github.com/nextgen-academy/academy-api/internal/observability/notify"
)

// AdmissionServiceOptions configures an AdmissionService. Notifier is
// optional; when wired, new submissions are announced best-effort.
type AdmissionServiceOptions struct {
	Repo     core.AdmissionRepository
	Courses  core.CourseRepository
	Notifier notify.Sink
	Logger   *slog.Logger
}

// AdmissionService handles public admission form submissions and their
// back-office review workflow.
type AdmissionService struct {
	repo     core.AdmissionRepository
	courses  core.CourseRepository
	notifier notify.Sink
	logger   *slog.Logger
}

// NewAdmissionService creates an AdmissionService from options.
func NewAdmissionService(opts AdmissionServiceOptions) (*AdmissionService, error) {
	if opts.Repo == nil {
		return nil, apperrors.Internal("admission repository is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &AdmissionService{
		repo:     opts.Repo,
		courses:  opts.Courses,
		notifier: opts.Notifier,
		logger:   opts.Logger,
	}, nil
}

// Submit records a public admission form submission. New submissions always
// start in pending. When a course repository is wired, the named course must
// match an active catalog entry; submissions store the title, not an id, so
// catalog edits never orphan past applications.
func (s *AdmissionService) Submit(ctx context.Context, req *model.CreateAdmissionRequest) (*model.Admission, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if s.courses != nil {
		ok, err := s.courseIsOpen(ctx, req.Course)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.ValidationField("course", "selected course is not open for admission")
		}
	}

	admission, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.announce(ctx, admission)
	return admission, nil
}

// announce notifies the configured sink of a new submission. Delivery
// failures are logged, never surfaced to the applicant.
func (s *AdmissionService) announce(ctx context.Context, admission *model.Admission) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.SendAdmissionReceived(ctx, notify.AdmissionReceivedPayload{
		AdmissionID: admission.ID,
		Applicant:   admission.FullName,
		Email:       admission.Email,
		Phone:       admission.ContactNumber,
		Course:      admission.Course,
		SubmittedAt: admission.CreatedAt,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "admission notification failed",
			"admission_id", admission.ID, "error", err)
	}
}

func (s *AdmissionService) courseIsOpen(ctx context.Context, title string) (bool, error) {
	status := model.CourseStatusActive
	courses, err := s.courses.List(ctx, model.CoursesListOptions{Status: &status, Limit: maxListLimit})
	if err != nil {
		return false, err
	}
	for _, c := range courses {
		if c.Title == title {
			return true, nil
		}
	}
	return false, nil
}

// Get fetches one submission by id.
func (s *AdmissionService) Get(ctx context.Context, id string) (*model.Admission, error) {
	if id == "" {
		return nil, apperrors.Validation("admission id is required")
	}
	return s.repo.GetByID(ctx, id)
}

// List returns submissions for the back-office, newest first.
func (s *AdmissionService) List(ctx context.Context, opts model.AdmissionsListOptions) ([]*model.Admission, error) {
	normalizeListBounds(&opts.Limit, &opts.Offset)
	if opts.Status != nil && !model.ValidAdmissionStatus(*opts.Status) {
		return nil, apperrors.ValidationField("status", "unknown admission status")
	}
	return s.repo.List(ctx, opts)
}

// UpdateStatus moves a submission through the review workflow.
func (s *AdmissionService) UpdateStatus(ctx context.Context, id string, req model.UpdateAdmissionStatusRequest) (*model.Admission, error) {
	if id == "" {
		return nil, apperrors.Validation("admission id is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	return s.repo.UpdateStatus(ctx, id, req.Status)
}

// Delete removes a submission. Deleting an unknown id is a NotFound error.
func (s *AdmissionService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.Validation("admission id is required")
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NotFound("admission not found")
	}
	return nil
}

// Count returns the total number of submissions.
func (s *AdmissionService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
