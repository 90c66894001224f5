package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nextgen-academy/academy-api/internal/data/database"
	"github.com/nextgen-academy/academy-api/internal/domain/model"
)

func strPtr(s string) *string { return &s }

func TestCourseRepo_BuildUpdateClause(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := NewCourseRepoWithTimeProvider(nil, NewFixedTimeProvider(fixed))

	t.Run("single field still refreshes updated_at", func(t *testing.T) {
		clause, args := repo.buildUpdateClause(model.UpdateCourseRequest{
			Title: strPtr("  Web Development  "),
		})

		assert.Equal(t, "title = $1, updated_at = $2", clause)
		assert.Equal(t, []any{"Web Development", fixed}, args)
	})

	t.Run("all fields", func(t *testing.T) {
		topics := []string{"HTML", "CSS"}
		clause, args := repo.buildUpdateClause(model.UpdateCourseRequest{
			Title:       strPtr("Web Development"),
			Category:    strPtr("Programming"),
			Duration:    strPtr("3 months"),
			Description: strPtr("Intro course"),
			Topics:      &topics,
			Status:      strPtr(model.CourseStatusInactive),
		})

		assert.Equal(t,
			"title = $1, category = $2, duration = $3, description = $4, topics = $5, status = $6, updated_at = $7",
			clause)
		assert.Len(t, args, 7)
		assert.Equal(t, topics, args[4])
	})
}

func TestCourseRepo_BuildCourseQueryOptions(t *testing.T) {
	repo := NewCourseRepo(nil)

	opts := repo.buildCourseQueryOptions(model.CoursesListOptions{
		Category: strPtr(" Programming "),
		Status:   strPtr(model.CourseStatusActive),
		Sort:     "title",
		Dir:      "asc",
	}, 25, 0)

	query, args := database.BuildListQuery(opts)

	assert.Contains(t, query, `FROM "courses"`)
	assert.Contains(t, query, `"category" = $1`)
	assert.Contains(t, query, `"status" = $2`)
	assert.Contains(t, query, `ORDER BY "title" ASC`)
	assert.Equal(t, []any{"Programming", "active", 25, 0}, args)
}

func TestValidateCourseSort(t *testing.T) {
	tests := []struct {
		name    string
		sort    string
		dir     string
		wantCol string
		wantDir string
	}{
		{"defaults", "", "", "created_at", "DESC"},
		{"valid sort and dir", "title", "asc", "title", "ASC"},
		{"unknown column falls back", "password_hash", "asc", "created_at", "ASC"},
		{"unknown dir falls back", "category", "sideways", "category", "DESC"},
		{"case and whitespace tolerated", " Title ", " DESC ", "title", "DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, dir := validateCourseSort(tt.sort, tt.dir)
			assert.Equal(t, tt.wantCol, col)
			assert.Equal(t, tt.wantDir, dir)
		})
	}
}
