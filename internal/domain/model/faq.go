package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// FAQ represents a frequently asked question shown on the public site.
type FAQ struct {
	ID           string    `json:"id"            db:"id"`
	Question     string    `json:"question"      db:"question"`
	Answer       string    `json:"answer"        db:"answer"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at"    db:"created_at"`
}

const maxFAQQuestionLen = 500

// CreateFAQRequest represents a request to create a new FAQ entry.
type CreateFAQRequest struct {
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	DisplayOrder int    `json:"display_order"`
}

// Validate checks the request for required fields and bounds.
func (r *CreateFAQRequest) Validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return errors.New("question is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Question) > maxFAQQuestionLen {
		return fmt.Errorf("question cannot exceed %d characters", maxFAQQuestionLen)
	}
	if strings.TrimSpace(r.Answer) == "" {
		return errors.New("answer is required and cannot be empty")
	}
	if r.DisplayOrder < 0 {
		return errors.New("display_order must be non-negative")
	}
	return nil
}

// UpdateFAQRequest represents a partial update to an FAQ entry.
type UpdateFAQRequest struct {
	Question     *string `json:"question,omitempty"`
	Answer       *string `json:"answer,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
}

// Validate checks that at least one field is set and all set fields are valid.
func (r *UpdateFAQRequest) Validate() error {
	if r.Question == nil && r.Answer == nil && r.DisplayOrder == nil {
		return errors.New("at least one field must be updated")
	}
	if r.Question != nil && strings.TrimSpace(*r.Question) == "" {
		return errors.New("question cannot be empty")
	}
	if r.Answer != nil && strings.TrimSpace(*r.Answer) == "" {
		return errors.New("answer cannot be empty")
	}
	if r.DisplayOrder != nil && *r.DisplayOrder < 0 {
		return errors.New("display_order must be non-negative")
	}
	return nil
}
