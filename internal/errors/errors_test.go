package errors

import (
	"errors"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeNotFound,
				Message: "course not found",
			},
			want: "course not found",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeInternal,
				Message: "failed to save admission",
				Cause:   errors.New("underlying error"),
			},
			want: "failed to save admission: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &AppError{
		Code:    ErrCodeInternal,
		Message: "wrapped error",
		Cause:   cause,
	}

	if unwrapped := err.Unwrap(); !errors.Is(unwrapped, cause) {
		t.Errorf("AppError.Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantCode ErrorCode
		wantMsg  string
	}{
		{"NotFound", NotFound("course not found"), ErrCodeNotFound, "course not found"},
		{"NotFoundf", NotFoundf("course %s not found", "go-101"), ErrCodeNotFound, "course go-101 not found"},
		{"Conflict", Conflict("email already registered"), ErrCodeConflict, "email already registered"},
		{"Conflictf", Conflictf("faq order %d taken", 3), ErrCodeConflict, "faq order 3 taken"},
		{"Validation", Validation("invalid input"), ErrCodeValidation, "invalid input"},
		{"Validationf", Validationf("age must be between %d and %d", 5, 100), ErrCodeValidation, "age must be between 5 and 100"},
		{"ForeignKey", ForeignKey("course is in use"), ErrCodeForeignKey, "course is in use"},
		{"Unauthorized", Unauthorized("invalid credentials"), ErrCodeUnauthorized, "invalid credentials"},
		{"Forbidden", Forbidden("admin role required"), ErrCodeForbidden, "admin role required"},
		{"Internal", Internal("boom"), ErrCodeInternal, "boom"},
		{"Internalf", Internalf("boom %d", 2), ErrCodeInternal, "boom 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %v, want %v", tt.err.Code, tt.wantCode)
			}
			if tt.err.Message != tt.wantMsg {
				t.Errorf("Message = %v, want %v", tt.err.Message, tt.wantMsg)
			}
		})
	}
}

func TestValidationField(t *testing.T) {
	err := ValidationField("email", "invalid email format")
	if err.Code != ErrCodeValidation {
		t.Errorf("ValidationField().Code = %v, want %v", err.Code, ErrCodeValidation)
	}
	if err.Field != "email" {
		t.Errorf("ValidationField().Field = %v, want %v", err.Field, "email")
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("pg connection lost")

	err := Wrap(cause, ErrCodeInternal, "failed to list courses")
	if err.Code != ErrCodeInternal {
		t.Errorf("Wrap().Code = %v, want %v", err.Code, ErrCodeInternal)
	}
	if !errors.Is(err, cause) {
		t.Error("Wrap() should preserve the cause for errors.Is")
	}

	if Wrap(nil, ErrCodeInternal, "x") != nil {
		t.Error("Wrap(nil) should be nil")
	}
}

func TestWrapf(t *testing.T) {
	cause := errors.New("boom")

	err := Wrapf(cause, ErrCodeInternal, "failed to update course %s", "go-101")
	if err.Message != "failed to update course go-101" {
		t.Errorf("Wrapf().Message = %v", err.Message)
	}
	if !errors.Is(err, cause) {
		t.Error("Wrapf() should preserve the cause for errors.Is")
	}

	if Wrapf(nil, ErrCodeInternal, "x") != nil {
		t.Error("Wrapf(nil) should be nil")
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		fn   func(error) bool
		want bool
	}{
		{"IsNotFound matches", NotFound("x"), IsNotFound, true},
		{"IsNotFound rejects other code", Conflict("x"), IsNotFound, false},
		{"IsNotFound rejects plain error", errors.New("x"), IsNotFound, false},
		{"IsConflict matches", Conflict("x"), IsConflict, true},
		{"IsValidation matches", Validation("x"), IsValidation, true},
		{"IsForeignKey matches", ForeignKey("x"), IsForeignKey, true},
		{"IsUnauthorized matches", Unauthorized("x"), IsUnauthorized, true},
		{"IsForbidden matches", Forbidden("x"), IsForbidden, true},
		{"IsInternal matches", Internal("x"), IsInternal, true},
		{"predicate sees through wrapping", Wrap(NotFound("x"), ErrCodeInternal, "y"), IsNotFound, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.err); got != tt.want {
				t.Errorf("predicate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(Forbidden("x")); got != ErrCodeForbidden {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeForbidden)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain error) = %v, want empty", got)
	}
}

func TestGetField(t *testing.T) {
	if got := GetField(ValidationField("contact_number", "too short")); got != "contact_number" {
		t.Errorf("GetField() = %v, want contact_number", got)
	}
	if got := GetField(errors.New("plain")); got != "" {
		t.Errorf("GetField(plain error) = %v, want empty", got)
	}
}
