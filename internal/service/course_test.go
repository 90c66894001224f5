package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nextgen-academy/academy-api/internal/domain/model"
	apperrors "github.com/nextgen-academy/academy-api/internal/errors"
	"github.com/nextgen-academy/academy-api/internal/mocks"
)

// fakeCourseCache is an in-memory stand-in for the Redis course cache.
type fakeCourseCache struct {
	mu          sync.Mutex
	entries     map[string][]*model.Course
	invalidated int
	getErr      error
	setErr      error
}

func newFakeCourseCache() *fakeCourseCache {
	return &fakeCourseCache{entries: make(map[string][]*model.Course)}
}

func (f *fakeCourseCache) Get(_ context.Context, key string) ([]*model.Course, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	courses, ok := f.entries[key]
	return courses, ok, nil
}

func (f *fakeCourseCache) Set(_ context.Context, key string, courses []*model.Course, _ time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = courses
	return nil
}

func (f *fakeCourseCache) Invalidate(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = make(map[string][]*model.Course)
	f.invalidated++
	return nil
}

func validCreateCourse() *model.CreateCourseRequest {
	return &model.CreateCourseRequest{
		Title:    "Web Development",
		Category: "programming",
		Duration: "6 months",
		Topics:   []string{"HTML", "CSS", "JavaScript"},
	}
}

func TestCourseService_CreateInvalidatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCourseRepository(ctrl)
	cache := newFakeCourseCache()
	svc, err := NewCourseService(CourseServiceOptions{Repo: repo, Cache: cache})
	require.NoError(t, err)

	req := validCreateCourse()
	repo.EXPECT().Create(gomock.Any(), req).Return(&model.Course{ID: "c1", Title: req.Title}, nil)

	course, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "c1", course.ID)
	assert.Equal(t, 1, cache.invalidated)
}

func TestCourseService_CreateValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCourseRepository(ctrl)
	svc, err := NewCourseService(CourseServiceOptions{Repo: repo})
	require.NoError(t, err)

	// The repository must not be called for an invalid request.
	_, err = svc.Create(context.Background(), &model.CreateCourseRequest{Title: "x"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestCourseService_ListPublicCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCourseRepository(ctrl)
	cache := newFakeCourseCache()
	svc, err := NewCourseService(CourseServiceOptions{Repo: repo, Cache: cache})
	require.NoError(t, err)

	courses := []*model.Course{{ID: "c1", Title: "Web Development", Status: model.CourseStatusActive}}
	repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, opts model.CoursesListOptions) ([]*model.Course, error) {
			require.NotNil(t, opts.Status)
			assert.Equal(t, model.CourseStatusActive, *opts.Status)
			return courses, nil
		}).Times(1)

	got, err := svc.ListPublic(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, courses, got)

	// Second call is served from cache; the single Times(1) expectation above
	// fails the test if the repository is hit again.
	got, err = svc.ListPublic(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, courses, got)
}

func TestCourseService_ListPublicCategoryKeysAreSeparate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCourseRepository(ctrl)
	cache := newFakeCourseCache()
	svc, err := NewCourseService(CourseServiceOptions{Repo: repo, Cache: cache})
	require.NoError(t, err)

	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*model.Course{}, nil).Times(2)

	_, err = svc.ListPublic(context.Background(), nil)
	require.NoError(t, err)

	category := "design"
	_, err = svc.ListPublic(context.Background(), &category)
	require.NoError(t, err)

	assert.Len(t, cache.entries, 2)
}

func TestCourseService_ListPublicCacheFailureFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCourseRepository(ctrl)
	cache := newFakeCourseCache()
	cache.getErr = errors.New("redis down")
	svc, err := NewCourseService(CourseServiceOptions{Repo: repo, Cache: cache})
	require.NoError(t, err)

	courses := []*model.Course{{ID: "c1"}}
	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(courses, nil)

	got, err := svc.ListPublic(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, courses, got, "cache outage must not break the public listing")
}

func TestCourseService_UpdateInvalidatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCourseRepository(ctrl)
	cache := newFakeCourseCache()
	svc, err := NewCourseService(CourseServiceOptions{Repo: repo, Cache: cache})
	require.NoError(t, err)

	title := "Advanced Web Development"
	req := model.UpdateCourseRequest{Title: &title}
	repo.EXPECT().Update(gomock.Any(), "c1", req).Return(&model.Course{ID: "c1", Title: title}, nil)

	course, err := svc.Update(context.Background(), "c1", req)
	require.NoError(t, err)
	assert.Equal(t, title, course.Title)
	assert.Equal(t, 1, cache.invalidated)
}

func TestCourseService_UpdateRequiresAField(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, err := NewCourseService(CourseServiceOptions{Repo: mocks.NewMockCourseRepository(ctrl)})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), "c1", model.UpdateCourseRequest{})
	assert.True(t, apperrors.IsValidation(err))
}

func TestCourseService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCourseRepository(ctrl)
	cache := newFakeCourseCache()
	svc, err := NewCourseService(CourseServiceOptions{Repo: repo, Cache: cache})
	require.NoError(t, err)

	repo.EXPECT().Delete(gomock.Any(), "c1").Return(true, nil)
	require.NoError(t, svc.Delete(context.Background(), "c1"))
	assert.Equal(t, 1, cache.invalidated)

	repo.EXPECT().Delete(gomock.Any(), "missing").Return(false, nil)
	err = svc.Delete(context.Background(), "missing")
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, 1, cache.invalidated, "a miss must not invalidate the cache")
}

func TestCourseService_ListClampsPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCourseRepository(ctrl)
	svc, err := NewCourseService(CourseServiceOptions{Repo: repo})
	require.NoError(t, err)

	repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, opts model.CoursesListOptions) ([]*model.Course, error) {
			assert.Equal(t, maxListLimit, opts.Limit)
			assert.Equal(t, 0, opts.Offset)
			return nil, nil
		})

	_, err = svc.List(context.Background(), model.CoursesListOptions{Limit: 10_000, Offset: -5})
	require.NoError(t, err)
}
