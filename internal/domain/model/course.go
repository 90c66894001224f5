//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Course represents a training course offered by the academy.
type Course struct {
	ID          string    `json:"id"          db:"id"`
	Title       string    `json:"title"       db:"title"`
	Category    string    `json:"category"    db:"category"`
	Duration    string    `json:"duration"    db:"duration"`
	Description string    `json:"description" db:"description"`
	Topics      []string  `json:"topics"      db:"topics"`
	Status      string    `json:"status"      db:"status"`
	CreatedAt   time.Time `json:"created_at"  db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"  db:"updated_at"`
}

// CourseStatus values accepted for Course.Status.
const (
	CourseStatusActive   = "active"
	CourseStatusInactive = "inactive"
)

const (
	maxCourseTitleLen    = 200
	maxCourseCategoryLen = 100
	maxCourseDurationLen = 50
	maxCourseTopics      = 50
)

// IsActive reports whether the course is visible on the public site.
func (c *Course) IsActive() bool { return c.Status == CourseStatusActive }

func validCourseStatus(s string) bool {
	return s == CourseStatusActive || s == CourseStatusInactive
}

// CreateCourseRequest represents a request to create a new course.
type CreateCourseRequest struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
	Status      string   `json:"status,omitempty"`
}

// Validate checks the request for required fields and bounds.
func (r *CreateCourseRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Title) > maxCourseTitleLen {
		return fmt.Errorf("title cannot exceed %d characters", maxCourseTitleLen)
	}
	if strings.TrimSpace(r.Category) == "" {
		return errors.New("category is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Category) > maxCourseCategoryLen {
		return fmt.Errorf("category cannot exceed %d characters", maxCourseCategoryLen)
	}
	if strings.TrimSpace(r.Duration) == "" {
		return errors.New("duration is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Duration) > maxCourseDurationLen {
		return fmt.Errorf("duration cannot exceed %d characters", maxCourseDurationLen)
	}
	if len(r.Topics) > maxCourseTopics {
		return fmt.Errorf("topics cannot exceed %d entries", maxCourseTopics)
	}
	for _, topic := range r.Topics {
		if strings.TrimSpace(topic) == "" {
			return errors.New("topics cannot contain empty entries")
		}
	}
	if r.Status != "" && !validCourseStatus(r.Status) {
		return fmt.Errorf("status must be one of: %s, %s", CourseStatusActive, CourseStatusInactive)
	}
	return nil
}

// UpdateCourseRequest represents a partial update to a course.
// Nil fields are left unchanged.
type UpdateCourseRequest struct {
	Title       *string   `json:"title,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Duration    *string   `json:"duration,omitempty"`
	Description *string   `json:"description,omitempty"`
	Topics      *[]string `json:"topics,omitempty"`
	Status      *string   `json:"status,omitempty"`
}

// Validate checks that at least one field is set and all set fields are valid.
func (r *UpdateCourseRequest) Validate() error {
	if r.Title == nil && r.Category == nil && r.Duration == nil &&
		r.Description == nil && r.Topics == nil && r.Status == nil {
		return errors.New("at least one field must be updated")
	}
	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			return errors.New("title cannot be empty")
		}
		if utf8.RuneCountInString(*r.Title) > maxCourseTitleLen {
			return fmt.Errorf("title cannot exceed %d characters", maxCourseTitleLen)
		}
	}
	if r.Category != nil && strings.TrimSpace(*r.Category) == "" {
		return errors.New("category cannot be empty")
	}
	if r.Duration != nil && strings.TrimSpace(*r.Duration) == "" {
		return errors.New("duration cannot be empty")
	}
	if r.Topics != nil {
		if len(*r.Topics) > maxCourseTopics {
			return fmt.Errorf("topics cannot exceed %d entries", maxCourseTopics)
		}
		for _, topic := range *r.Topics {
			if strings.TrimSpace(topic) == "" {
				return errors.New("topics cannot contain empty entries")
			}
		}
	}
	if r.Status != nil && !validCourseStatus(*r.Status) {
		return fmt.Errorf("status must be one of: %s, %s", CourseStatusActive, CourseStatusInactive)
	}
	return nil
}

// CoursesListOptions carries optional filters for listing courses.
type CoursesListOptions struct {
	Category *string
	Status   *string
	Limit    int
	Offset   int
	Sort     string
	Dir      string
}
