// Package mocks provides mock implementations for testing the service layer.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the repository interfaces in internal/core. Regenerate after interface
// changes with:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	mockRepo := mocks.NewMockCourseRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(course, nil)
package mocks

// Generate mock for CourseRepository: Create, GetByID, List, Update, Delete, Count.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=course_repository_mock.go github.com/nextgen-academy/academy-api/internal/core CourseRepository

// Generate mock for AdmissionRepository: Create, GetByID, List, UpdateStatus, Delete, Count, CountByStatus.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=admission_repository_mock.go github.com/nextgen-academy/academy-api/internal/core AdmissionRepository

// Generate mock for FAQRepository: Create, GetByID, List, Update, Delete, Count.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=faq_repository_mock.go github.com/nextgen-academy/academy-api/internal/core FAQRepository

// Generate mock for GalleryRepository: Create, GetByID, List, Delete, Count.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=gallery_repository_mock.go github.com/nextgen-academy/academy-api/internal/core GalleryRepository
