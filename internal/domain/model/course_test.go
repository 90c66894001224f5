package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCourseRequest_Validate(t *testing.T) {
	valid := CreateCourseRequest{
		Title:    "Certificate in Information Technology",
		Category: "IT",
		Duration: "6 Months",
		Topics:   []string{"MS Word", "MS Excel"},
	}

	t.Run("valid", func(t *testing.T) {
		req := valid
		require.NoError(t, req.Validate())
	})

	t.Run("valid with status", func(t *testing.T) {
		req := valid
		req.Status = CourseStatusInactive
		require.NoError(t, req.Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*CreateCourseRequest)
		wantMsg string
	}{
		{"missing title", func(r *CreateCourseRequest) { r.Title = "  " }, "title is required"},
		{"missing category", func(r *CreateCourseRequest) { r.Category = "" }, "category is required"},
		{"missing duration", func(r *CreateCourseRequest) { r.Duration = "" }, "duration is required"},
		{"empty topic", func(r *CreateCourseRequest) { r.Topics = []string{"MS Word", " "} }, "cannot contain empty"},
		{"bad status", func(r *CreateCourseRequest) { r.Status = "archived" }, "status must be one of"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestUpdateCourseRequest_Validate(t *testing.T) {
	t.Run("no fields", func(t *testing.T) {
		req := UpdateCourseRequest{}
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one field must be updated")
	})

	t.Run("empty title", func(t *testing.T) {
		empty := ""
		req := UpdateCourseRequest{Title: &empty}
		require.Error(t, req.Validate())
	})

	t.Run("status only", func(t *testing.T) {
		status := CourseStatusActive
		req := UpdateCourseRequest{Status: &status}
		require.NoError(t, req.Validate())
	})
}

func TestCourseIsActive(t *testing.T) {
	assert.True(t, (&Course{Status: CourseStatusActive}).IsActive())
	assert.False(t, (&Course{Status: CourseStatusInactive}).IsActive())
}
