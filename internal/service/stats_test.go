package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	apperrors "github.com/nextgen-academy/academy-api/internal/errors"
	"github.com/nextgen-academy/academy-api/internal/mocks"
)

func newStatsService(t *testing.T, ctrl *gomock.Controller) (*StatsService, *mocks.MockCourseRepository, *mocks.MockAdmissionRepository, *mocks.MockFAQRepository, *mocks.MockGalleryRepository) {
	t.Helper()
	courses := mocks.NewMockCourseRepository(ctrl)
	admissions := mocks.NewMockAdmissionRepository(ctrl)
	faqs := mocks.NewMockFAQRepository(ctrl)
	gallery := mocks.NewMockGalleryRepository(ctrl)
	svc, err := NewStatsService(StatsServiceOptions{
		Courses:    courses,
		Admissions: admissions,
		FAQs:       faqs,
		Gallery:    gallery,
	})
	require.NoError(t, err)
	return svc, courses, admissions, faqs, gallery
}

func TestStatsService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, courses, admissions, faqs, gallery := newStatsService(t, ctrl)

	courses.EXPECT().Count(gomock.Any()).Return(12, nil)
	admissions.EXPECT().Count(gomock.Any()).Return(48, nil)
	admissions.EXPECT().CountByStatus(gomock.Any(), "pending").Return(7, nil)
	faqs.EXPECT().Count(gomock.Any()).Return(9, nil)
	gallery.EXPECT().Count(gomock.Any()).Return(30, nil)

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &DashboardStats{
		Courses:           12,
		Admissions:        48,
		PendingAdmissions: 7,
		FAQs:              9,
		GalleryImages:     30,
	}, stats)
}

func TestStatsService_DashboardPropagatesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, courses, admissions, faqs, gallery := newStatsService(t, ctrl)

	courses.EXPECT().Count(gomock.Any()).Return(0, apperrors.Internal("db down")).AnyTimes()
	admissions.EXPECT().Count(gomock.Any()).Return(0, nil).AnyTimes()
	admissions.EXPECT().CountByStatus(gomock.Any(), "pending").Return(0, nil).AnyTimes()
	faqs.EXPECT().Count(gomock.Any()).Return(0, nil).AnyTimes()
	gallery.EXPECT().Count(gomock.Any()).Return(0, nil).AnyTimes()

	_, err := svc.Dashboard(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsInternal(err))
}
