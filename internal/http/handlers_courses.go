package httpx

import (
	"net/http"

	"github.com/nextgen-academy/academy-api/internal/domain/model"
	"github.com/nextgen-academy/academy-api/internal/service"
)

// CourseHandlers provides HTTP handlers for the course catalog.
type CourseHandlers struct {
	Svc *service.CourseService
}

// ListPublic returns the active courses shown on the public site.
// GET /api/courses?category=<optional>.
func (h *CourseHandlers) ListPublic(w http.ResponseWriter, r *http.Request) {
	courses, err := h.Svc.ListPublic(r.Context(), optionalQuery(r, "category"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"courses": courses})
}

// Get returns one course.
// GET /api/courses/{id}.
func (h *CourseHandlers) Get(w http.ResponseWriter, r *http.Request) {
	course, err := h.Svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, course)
}

// List returns courses for the back-office with filters and pagination.
// GET /api/admin/courses?category=&status=&sort=&dir=&limit=&offset=.
func (h *CourseHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 20, 100)
	opts := model.CoursesListOptions{
		Category: optionalQuery(r, "category"),
		Status:   optionalQuery(r, "status"),
		Limit:    limit,
		Offset:   offset,
		Sort:     r.URL.Query().Get("sort"),
		Dir:      r.URL.Query().Get("dir"),
	}

	courses, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"courses": courses})
}

// Create adds a course.
// POST /api/admin/courses.
func (h *CourseHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCourseRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	course, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, course)
}

// Update applies a partial update.
// PATCH /api/admin/courses/{id}.
func (h *CourseHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateCourseRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	course, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, course)
}

// Delete removes a course.
// DELETE /api/admin/courses/{id}.
func (h *CourseHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
