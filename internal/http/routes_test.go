package httpx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/nextgen-academy/academy-api/internal/domain/auth"
	"github.com/nextgen-academy/academy-api/internal/domain/model"
	"github.com/nextgen-academy/academy-api/internal/mocks"
	"github.com/nextgen-academy/academy-api/internal/service"
)

func newTestRouter(t *testing.T, backends map[string]*guardBackend) (http.Handler, *mocks.MockCourseRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	courseRepo := mocks.NewMockCourseRepository(ctrl)
	admissionRepo := mocks.NewMockAdmissionRepository(ctrl)
	faqRepo := mocks.NewMockFAQRepository(ctrl)
	galleryRepo := mocks.NewMockGalleryRepository(ctrl)

	courses, err := service.NewCourseService(service.CourseServiceOptions{Repo: courseRepo})
	require.NoError(t, err)
	admissions, err := service.NewAdmissionService(service.AdmissionServiceOptions{Repo: admissionRepo, Courses: courseRepo})
	require.NoError(t, err)
	faqs, err := service.NewFAQService(faqRepo)
	require.NoError(t, err)
	gallery, err := service.NewGalleryService(service.GalleryServiceOptions{Repo: galleryRepo, Images: &fakeImageStore{}})
	require.NoError(t, err)
	stats, err := service.NewStatsService(service.StatsServiceOptions{
		Courses:    courseRepo,
		Admissions: admissionRepo,
		FAQs:       faqRepo,
		Gallery:    galleryRepo,
	})
	require.NoError(t, err)

	gates := newGuardRegistry(backends)
	t.Cleanup(gates.Close)

	router := NewRouter(RouterServices{
		Courses:    courses,
		Admissions: admissions,
		FAQs:       faqs,
		Gallery:    gallery,
		Stats:      stats,
		Gates:      gates,
	})
	return router, courseRepo
}

type fakeImageStore struct{}

func (fakeImageStore) Save(_ context.Context, filename string, _ io.Reader) (string, error) {
	return filename, nil
}

func (fakeImageStore) Remove(context.Context, string) error { return nil }

func TestRouter_PublicCourseListing(t *testing.T) {
	router, courseRepo := newTestRouter(t, nil)
	courseRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*model.Course{
		{ID: "c1", Title: "Web Development", Status: model.CourseStatusActive},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Web Development")
}

func TestRouter_AdminRouteRequiresSession(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/courses", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_AdminRouteWithAuthorizedSession(t *testing.T) {
	backend := &guardBackend{
		session: &domainauth.Session{ID: "s1", UserID: "u1", Email: "admin@academy.test"},
		isAdmin: true,
	}
	router, courseRepo := newTestRouter(t, map[string]*guardBackend{"s1": backend})
	courseRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*model.Course{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/courses", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "s1"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_HealthCheck(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
