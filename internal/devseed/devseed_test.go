package devseed

import (
	"testing"

	"github.com/nextgen-academy/academy-api/internal/domain/model"
)

func TestDefaultSeedDataIsValid(t *testing.T) {
	t.Parallel()

	for _, req := range defaultCourses() {
		if err := req.Validate(); err != nil {
			t.Errorf("course %q: %v", req.Title, err)
		}
	}
	for _, req := range defaultFAQs() {
		if err := req.Validate(); err != nil {
			t.Errorf("faq %q: %v", req.Question, err)
		}
	}
	for _, req := range defaultGalleryImages() {
		if err := req.Validate(); err != nil {
			t.Errorf("gallery %q: %v", req.Title, err)
		}
	}

	account := model.CreateAccountRequest{Email: AdminEmail, Password: AdminPassword}
	if err := account.Validate(); err != nil {
		t.Errorf("dev admin credentials: %v", err)
	}
}

func TestDefaultCoursesIncludeActiveEntries(t *testing.T) {
	t.Parallel()

	active := 0
	for _, req := range defaultCourses() {
		if req.Status == model.CourseStatusActive {
			active++
		}
	}
	if active == 0 {
		t.Fatal("seed data must include at least one active course")
	}
}
