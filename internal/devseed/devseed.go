// Package devseed populates a development database with sample academy
// content and a ready-to-use admin account. It is wired behind the
// academy-admin db-seed command and is safe to run repeatedly.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/nextgen-academy/academy-api/internal/adapters/credauth"
	"github.com/nextgen-academy/academy-api/internal/data"
	domainauth "github.com/nextgen-academy/academy-api/internal/domain/auth"
	"github.com/nextgen-academy/academy-api/internal/domain/model"
	apperrors "github.com/nextgen-academy/academy-api/internal/errors"
)

// Dev admin credentials. Local development only.
const (
	AdminEmail    = "admin@academy.local"
	AdminPassword = "academy-dev-password"
)

// Services bundles the repositories needed for development seeding.
type Services struct {
	DB       *sql.DB
	courses  *data.CourseRepo
	faqs     *data.FAQRepo
	gallery  *data.GalleryRepo
	accounts *data.AccountRepo
	roles    *data.UserRoleRepo
}

// NewServices constructs all repositories for seeding using the provided DB.
func NewServices(db *sql.DB) Services {
	return Services{
		DB:       db,
		courses:  data.NewCourseRepo(db),
		faqs:     data.NewFAQRepo(db),
		gallery:  data.NewGalleryRepo(db),
		accounts: data.NewAccountRepo(db),
		roles:    data.NewUserRoleRepo(db),
	}
}

// Run executes the full development seeding workflow against the provided DB.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	failures := 0
	failures += seedCourses(ctx, svcs.courses, logger)
	failures += seedFAQs(ctx, svcs.faqs, logger)
	failures += seedGallery(ctx, svcs.gallery, logger)
	if err := seedAdminAccount(ctx, svcs, logger); err != nil {
		return err
	}
	if failures > 0 {
		return fmt.Errorf("%d seed errors; check logs", failures)
	}
	return nil
}

func seedCourses(ctx context.Context, repo *data.CourseRepo, logger *slog.Logger) int {
	count, err := repo.Count(ctx)
	if err != nil {
		logError(ctx, logger, "failed to count courses", err)
		return 1
	}
	if count > 0 {
		logInfo(ctx, logger, "courses already present, skipping", "count", count)
		return 0
	}

	failures := 0
	for _, req := range defaultCourses() {
		created, createErr := repo.Create(ctx, req)
		if createErr != nil {
			logError(ctx, logger, "failed to create course", createErr, "title", req.Title)
			failures++
			continue
		}
		logInfo(ctx, logger, "created course", "id", created.ID, "title", created.Title)
	}
	return failures
}

func defaultCourses() []*model.CreateCourseRequest {
	return []*model.CreateCourseRequest{
		{
			Title:       "Web Development",
			Category:    "Programming",
			Duration:    "6 months",
			Description: "Build modern websites and web applications from scratch, starting with HTML and CSS and finishing with a database-backed project.",
			Topics:      []string{"HTML & CSS", "JavaScript", "Responsive layouts", "Backend basics", "Deployment"},
			Status:      model.CourseStatusActive,
		},
		{
			Title:       "Graphic Design",
			Category:    "Design",
			Duration:    "4 months",
			Description: "Learn the tools and principles of visual design, from typography and color theory to complete branding projects.",
			Topics:      []string{"Design principles", "Adobe Photoshop", "Adobe Illustrator", "Logo design", "Portfolio work"},
			Status:      model.CourseStatusActive,
		},
		{
			Title:       "Office Automation",
			Category:    "Computer Basics",
			Duration:    "3 months",
			Description: "Hands-on training in everyday office software covering documents, spreadsheets, presentations and email.",
			Topics:      []string{"Microsoft Word", "Microsoft Excel", "PowerPoint", "Email & internet", "Typing practice"},
			Status:      model.CourseStatusActive,
		},
		{
			Title:       "Python Programming",
			Category:    "Programming",
			Duration:    "4 months",
			Description: "An introduction to programming with Python, ending with small automation and data projects.",
			Topics:      []string{"Python syntax", "Data structures", "File handling", "Automation scripts", "Intro to data analysis"},
			Status:      model.CourseStatusInactive,
		},
	}
}

func seedFAQs(ctx context.Context, repo *data.FAQRepo, logger *slog.Logger) int {
	count, err := repo.Count(ctx)
	if err != nil {
		logError(ctx, logger, "failed to count faqs", err)
		return 1
	}
	if count > 0 {
		logInfo(ctx, logger, "faqs already present, skipping", "count", count)
		return 0
	}

	failures := 0
	for _, req := range defaultFAQs() {
		created, createErr := repo.Create(ctx, req)
		if createErr != nil {
			logError(ctx, logger, "failed to create faq", createErr, "question", req.Question)
			failures++
			continue
		}
		logInfo(ctx, logger, "created faq", "id", created.ID, "order", created.DisplayOrder)
	}
	return failures
}

func defaultFAQs() []*model.CreateFAQRequest {
	return []*model.CreateFAQRequest{
		{
			Question:     "How do I apply for admission?",
			Answer:       "Fill out the online admission form with your details and preferred course. Our office will contact you within two working days.",
			DisplayOrder: 1,
		},
		{
			Question:     "What are the class timings?",
			Answer:       "Morning and evening batches are available for most courses. Exact timings are shared when your admission is confirmed.",
			DisplayOrder: 2,
		},
		{
			Question:     "Do I need my own computer?",
			Answer:       "No. The academy lab is equipped for all practical sessions, though practicing at home is encouraged.",
			DisplayOrder: 3,
		},
		{
			Question:     "Is a certificate awarded on completion?",
			Answer:       "Yes. Students who complete the coursework and final project receive a course completion certificate.",
			DisplayOrder: 4,
		},
	}
}

func seedGallery(ctx context.Context, repo *data.GalleryRepo, logger *slog.Logger) int {
	count, err := repo.Count(ctx)
	if err != nil {
		logError(ctx, logger, "failed to count gallery images", err)
		return 1
	}
	if count > 0 {
		logInfo(ctx, logger, "gallery already present, skipping", "count", count)
		return 0
	}

	failures := 0
	for _, req := range defaultGalleryImages() {
		created, createErr := repo.Create(ctx, req)
		if createErr != nil {
			logError(ctx, logger, "failed to create gallery image", createErr, "title", req.Title)
			failures++
			continue
		}
		logInfo(ctx, logger, "created gallery image", "id", created.ID, "title", created.Title)
	}
	return failures
}

func defaultGalleryImages() []*model.CreateGalleryImageRequest {
	return []*model.CreateGalleryImageRequest{
		{Title: "Computer Lab", ImagePath: "seed/computer-lab.jpg"},
		{Title: "Orientation Day", ImagePath: "seed/orientation-day.jpg"},
		{Title: "Certificate Ceremony", ImagePath: "seed/certificate-ceremony.jpg"},
	}
}

// seedAdminAccount ensures a dev admin login exists and holds the admin role.
func seedAdminAccount(ctx context.Context, svcs Services, logger *slog.Logger) error {
	account, err := svcs.accounts.GetByEmail(ctx, AdminEmail)
	switch {
	case err == nil:
		logInfo(ctx, logger, "dev admin account already exists", "email", AdminEmail)
	case apperrors.IsNotFound(err):
		hash, hashErr := credauth.NewHasher().Hash(AdminPassword)
		if hashErr != nil {
			return fmt.Errorf("hash dev admin password: %w", hashErr)
		}
		account, err = svcs.accounts.Create(ctx, AdminEmail, hash)
		if err != nil {
			return fmt.Errorf("create dev admin account: %w", err)
		}
		logInfo(ctx, logger, "created dev admin account", "email", AdminEmail, "user_id", account.ID)
	default:
		return fmt.Errorf("look up dev admin account: %w", err)
	}

	if grantErr := svcs.roles.Grant(ctx, account.ID, domainauth.RoleAdmin); grantErr != nil {
		return fmt.Errorf("grant admin role to dev account: %w", grantErr)
	}
	logInfo(ctx, logger, "dev admin role ensured", "user_id", account.ID)
	return nil
}

func logInfo(ctx context.Context, logger *slog.Logger, msg string, args ...any) {
	if logger == nil {
		return
	}
	logger.InfoContext(ctx, msg, args...)
}

func logError(ctx context.Context, logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	logger.ErrorContext(ctx, msg, append(args, "error", err)...)
}
