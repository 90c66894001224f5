package httpx

import (
	"log/slog"
	"net/http"

	"github.com/nextgen-academy/academy-api/internal/authgate"
	"github.com/nextgen-academy/academy-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Courses    *service.CourseService
	Admissions *service.AdmissionService
	FAQs       *service.FAQService
	Gallery    *service.GalleryService
	Stats      *service.StatsService
	Auth       AuthServiceInterface
	Gates      *authgate.Registry
	Images     ImageOpener

	CookieDomain   string
	LoginPath      string
	MaxUploadBytes int64
	Logger         *slog.Logger
}

// NewRouter creates and configures the HTTP router. Admin routes sit behind
// the gate-backed guard; everything else is public.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	courseHandlers := &CourseHandlers{Svc: services.Courses}
	admissionHandlers := &AdmissionHandlers{Svc: services.Admissions}
	faqHandlers := &FAQHandlers{Svc: services.FAQs}
	galleryHandlers := &GalleryHandlers{
		Svc:            services.Gallery,
		Files:          services.Images,
		MaxUploadBytes: services.MaxUploadBytes,
	}

	// Public site API.
	mux.HandleFunc("GET /healthz", healthHandler)
	mux.HandleFunc("HEAD /healthz", healthHandler)
	mux.HandleFunc("GET /api/courses", courseHandlers.ListPublic)
	mux.HandleFunc("GET /api/courses/{id}", courseHandlers.Get)
	mux.HandleFunc("GET /api/faqs", faqHandlers.List)
	mux.HandleFunc("GET /api/gallery", galleryHandlers.List)
	mux.HandleFunc("POST /api/admissions", admissionHandlers.Submit)
	if services.Images != nil {
		mux.HandleFunc("GET /images/{file}", galleryHandlers.Serve)
	}

	if services.Auth != nil {
		authHandlers := &AuthHandlers{
			Svc:          services.Auth,
			Gates:        services.Gates,
			CookieDomain: services.CookieDomain,
			Logger:       services.Logger,
		}
		mux.HandleFunc("POST /api/auth/login", authHandlers.SignIn)
		mux.HandleFunc("POST /api/auth/signup", authHandlers.SignUp)
		mux.HandleFunc("POST /api/auth/logout", authHandlers.Logout)
		mux.HandleFunc("GET /api/auth/status", authHandlers.Status)
		mux.HandleFunc("GET /auth/login", authHandlers.Login)
		mux.HandleFunc("GET /auth/callback", authHandlers.Callback)
	}

	// Back-office API behind the admin guard.
	if services.Gates != nil {
		admin := http.NewServeMux()
		admin.HandleFunc("GET /api/admin/dashboard", (&DashboardHandlers{Svc: services.Stats}).Stats)

		admin.HandleFunc("GET /api/admin/courses", courseHandlers.List)
		admin.HandleFunc("POST /api/admin/courses", courseHandlers.Create)
		admin.HandleFunc("PATCH /api/admin/courses/{id}", courseHandlers.Update)
		admin.HandleFunc("DELETE /api/admin/courses/{id}", courseHandlers.Delete)

		admin.HandleFunc("GET /api/admin/admissions", admissionHandlers.List)
		admin.HandleFunc("GET /api/admin/admissions/{id}", admissionHandlers.Get)
		admin.HandleFunc("PATCH /api/admin/admissions/{id}/status", admissionHandlers.UpdateStatus)
		admin.HandleFunc("DELETE /api/admin/admissions/{id}", admissionHandlers.Delete)

		admin.HandleFunc("POST /api/admin/faqs", faqHandlers.Create)
		admin.HandleFunc("PATCH /api/admin/faqs/{id}", faqHandlers.Update)
		admin.HandleFunc("DELETE /api/admin/faqs/{id}", faqHandlers.Delete)

		admin.HandleFunc("POST /api/admin/gallery", galleryHandlers.Upload)
		admin.HandleFunc("DELETE /api/admin/gallery/{id}", galleryHandlers.Delete)

		guard := RequireAdmin(services.Gates, services.LoginPath, services.Logger)
		mux.Handle("/api/admin/", guard(admin))
	}

	return BrowserDetection()(mux)
}
