package model

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

// Admission represents an admission form submission from the public site.
type Admission struct {
	ID            string    `json:"id"             db:"id"`
	FullName      string    `json:"full_name"      db:"full_name"`
	FatherName    string    `json:"father_name"    db:"father_name"`
	Course        string    `json:"course"         db:"course"`
	CNIC          *string   `json:"cnic,omitempty" db:"cnic"`
	Email         string    `json:"email"          db:"email"`
	ContactNumber string    `json:"contact_number" db:"contact_number"`
	Address       string    `json:"address"        db:"address"`
	Gender        string    `json:"gender"         db:"gender"`
	Qualification string    `json:"qualification"  db:"qualification"`
	Age           int       `json:"age"            db:"age"`
	Profession    *string   `json:"profession,omitempty" db:"profession"`
	Status        string    `json:"status"         db:"status"`
	CreatedAt     time.Time `json:"created_at"     db:"created_at"`
}

// Admission status values.
const (
	AdmissionStatusPending  = "pending"
	AdmissionStatusApproved = "approved"
	AdmissionStatusRejected = "rejected"
)

// Gender values accepted on the admission form.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	minNameLen       = 2
	minAddressLen    = 5
	minContactDigits = 10
	maxFieldLen      = 200
	minAdmissionAge  = 5
	maxAdmissionAge  = 100
)

// ValidAdmissionStatus reports whether s is a recognised admission status.
func ValidAdmissionStatus(s string) bool {
	switch s {
	case AdmissionStatusPending, AdmissionStatusApproved, AdmissionStatusRejected:
		return true
	default:
		return false
	}
}

// CreateAdmissionRequest represents a public admission form submission.
// Field rules mirror the public form: names at least two characters, a valid
// email, a contact number of at least ten digits, an address of at least five
// characters, and a gender of male or female.
type CreateAdmissionRequest struct {
	FullName      string  `json:"full_name"`
	FatherName    string  `json:"father_name"`
	Course        string  `json:"course"`
	CNIC          *string `json:"cnic,omitempty"`
	Email         string  `json:"email"`
	ContactNumber string  `json:"contact_number"`
	Address       string  `json:"address"`
	Gender        string  `json:"gender"`
	Qualification string  `json:"qualification"`
	Age           int     `json:"age"`
	Profession    *string `json:"profession,omitempty"`
}

// Validate checks the submission against the public form rules.
func (r *CreateAdmissionRequest) Validate() error {
	if err := validateMinLen("full_name", r.FullName, minNameLen); err != nil {
		return err
	}
	if err := validateMinLen("father_name", r.FatherName, minNameLen); err != nil {
		return err
	}
	if strings.TrimSpace(r.Course) == "" {
		return errors.New("course is required and cannot be empty")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(r.Email)); err != nil {
		return errors.New("email must be a valid email address")
	}
	if countDigits(r.ContactNumber) < minContactDigits {
		return fmt.Errorf("contact_number must be at least %d digits", minContactDigits)
	}
	if err := validateMinLen("address", r.Address, minAddressLen); err != nil {
		return err
	}
	if r.Gender != GenderMale && r.Gender != GenderFemale {
		return fmt.Errorf("gender must be one of: %s, %s", GenderMale, GenderFemale)
	}
	if strings.TrimSpace(r.Qualification) == "" {
		return errors.New("qualification is required and cannot be empty")
	}
	if r.Age < minAdmissionAge || r.Age > maxAdmissionAge {
		return fmt.Errorf("age must be between %d and %d", minAdmissionAge, maxAdmissionAge)
	}
	return nil
}

// UpdateAdmissionStatusRequest updates the review status of a submission.
type UpdateAdmissionStatusRequest struct {
	Status string `json:"status"`
}

// Validate checks the requested status.
func (r *UpdateAdmissionStatusRequest) Validate() error {
	if !ValidAdmissionStatus(r.Status) {
		return fmt.Errorf("status must be one of: %s, %s, %s",
			AdmissionStatusPending, AdmissionStatusApproved, AdmissionStatusRejected)
	}
	return nil
}

// AdmissionsListOptions carries optional filters for listing admissions.
type AdmissionsListOptions struct {
	Status *string
	Course *string
	Limit  int
	Offset int
}

func validateMinLen(field, v string, minLen int) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return fmt.Errorf("%s is required and cannot be empty", field)
	}
	n := utf8.RuneCountInString(v)
	if n < minLen {
		return fmt.Errorf("%s must be at least %d characters", field, minLen)
	}
	if n > maxFieldLen {
		return fmt.Errorf("%s cannot exceed %d characters", field, maxFieldLen)
	}
	return nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
