package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/nextgen-academy/academy-api/config"
	"github.com/nextgen-academy/academy-api/internal/adapters/fsstore"
	redisadapter "github.com/nextgen-academy/academy-api/internal/adapters/redis"
	"github.com/nextgen-academy/academy-api/internal/authgate"
	"github.com/nextgen-academy/academy-api/internal/data"
	"github.com/nextgen-academy/academy-api/internal/observability/notify"
	"github.com/nextgen-academy/academy-api/internal/observability/notify/slack"
	"github.com/nextgen-academy/academy-api/internal/observability/statsd"
	"github.com/nextgen-academy/academy-api/internal/service"
)

// ServiceContainer holds the application's assembled services.
type ServiceContainer struct {
	Courses    *service.CourseService
	Admissions *service.AdmissionService
	FAQs       *service.FAQService
	Gallery    *service.GalleryService
	Stats      *service.StatsService
	Auth       *service.AuthService
	Gates      *authgate.Registry
	Images     *fsstore.ImageStore
	Metrics    *statsd.Client
}

// ServicesConfig contains the dependencies needed to build the container.
type ServicesConfig struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildServices wires repositories, adapters, and services together.
func BuildServices(cfg ServicesConfig) (*ServiceContainer, error) {
	if cfg.Config == nil {
		return nil, fmt.Errorf("app config is required")
	}
	if cfg.DB == nil {
		return nil, fmt.Errorf("database connection is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	courseRepo := data.NewCourseRepo(cfg.DB)
	admissionRepo := data.NewAdmissionRepo(cfg.DB)
	faqRepo := data.NewFAQRepo(cfg.DB)
	galleryRepo := data.NewGalleryRepo(cfg.DB)

	courseOpts := service.CourseServiceOptions{
		Repo:     courseRepo,
		CacheTTL: cfg.Config.Cache.CourseTTL,
		Logger:   logger,
	}
	if cfg.RedisClient != nil {
		courseOpts.Cache = redisadapter.NewCourseCache(cfg.RedisClient)
	}
	courses, err := service.NewCourseService(courseOpts)
	if err != nil {
		return nil, fmt.Errorf("build course service: %w", err)
	}

	admissions, err := service.NewAdmissionService(service.AdmissionServiceOptions{
		Repo:     admissionRepo,
		Courses:  courseRepo,
		Notifier: buildNotifier(cfg.Config.Notify, logger),
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build admission service: %w", err)
	}

	faqs, err := service.NewFAQService(faqRepo)
	if err != nil {
		return nil, fmt.Errorf("build faq service: %w", err)
	}

	images, err := fsstore.NewImageStore(cfg.Config.Uploads.Dir, cfg.Config.Uploads.MaxBytes)
	if err != nil {
		return nil, fmt.Errorf("build image store: %w", err)
	}

	gallery, err := service.NewGalleryService(service.GalleryServiceOptions{
		Repo:   galleryRepo,
		Images: images,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build gallery service: %w", err)
	}

	stats, err := service.NewStatsService(service.StatsServiceOptions{
		Courses:    courseRepo,
		Admissions: admissionRepo,
		FAQs:       faqRepo,
		Gallery:    galleryRepo,
	})
	if err != nil {
		return nil, fmt.Errorf("build stats service: %w", err)
	}

	metrics, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.Config.Observability.Metrics.IsEnabled(),
		Address: cfg.Config.Observability.Metrics.StatsdAddress,
		Prefix:  cfg.Config.Observability.Metrics.Prefix,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build metrics client: %w", err)
	}

	container := &ServiceContainer{
		Courses:    courses,
		Admissions: admissions,
		FAQs:       faqs,
		Gallery:    gallery,
		Stats:      stats,
		Images:     images,
		Metrics:    metrics,
	}

	auth := BuildAuthService(AuthConfig{
		Auth:        cfg.Config.Auth,
		DB:          cfg.DB,
		RedisClient: cfg.RedisClient,
		Logger:      logger,
	})
	if auth != nil {
		container.Auth = auth
		container.Gates = authgate.NewRegistry(auth.GateBackendFactory(), logger)
	}

	return container, nil
}

// buildNotifier returns nil when notifications are not configured.
//
//nolint:ireturn // callers only need the notify.Sink interface.
func buildNotifier(cfg config.NotifyConfig, logger *slog.Logger) notify.Sink {
	if !cfg.Enabled() {
		return nil
	}
	client, err := slack.NewClient(slack.Config{
		WebhookURL: cfg.SlackWebhookURL,
		Channel:    cfg.SlackChannel,
		Username:   cfg.SlackUsername,
		Timeout:    cfg.Timeout,
		RetryLimit: cfg.RetryLimit,
	})
	if err != nil {
		logger.Warn("admission notifications disabled", "error", err)
		return nil
	}
	logger.Info("admission notifications enabled", "channel", cfg.SlackChannel)
	return client
}

// Close releases resources owned by the container.
func (c *ServiceContainer) Close() {
	if c == nil {
		return
	}
	if c.Gates != nil {
		c.Gates.Close()
	}
	if c.Metrics != nil {
		_ = c.Metrics.Close()
	}
}
